package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/aweist/leaguecal/models"
	"github.com/aweist/leaguecal/storage"
)

//go:embed templates/*
var templates embed.FS

type Server struct {
	storage *storage.BoltStorage
	port    string
}

type PageData struct {
	Entries         []models.ScheduleEntry
	NotifiedEntries []models.NotifiedEntry
	CurrentTime     string
	Now             time.Time
	TeamName        string
}

func NewServer(storage *storage.BoltStorage, port string) *Server {
	return &Server{
		storage: storage,
		port:    port,
	}
}

func (s *Server) Start(teamName string) {
	http.HandleFunc("/", s.handleDebugPage(teamName))
	http.HandleFunc("/api/schedule", s.handleAPISchedule(teamName))
	http.HandleFunc("/api/notified", s.handleAPINotified)
	http.HandleFunc("/api/notified/delete", s.handleDeleteNotifiedEntry)

	log.Printf("Starting debug web server on http://localhost:%s", s.port)
	if err := http.ListenAndServe(":"+s.port, nil); err != nil {
		log.Printf("Web server error: %v", err)
	}
}

func (s *Server) handleDebugPage(teamName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tmpl, err := template.ParseFS(templates, "templates/debug.html")
		if err != nil {
			http.Error(w, fmt.Sprintf("Template error: %v", err), http.StatusInternalServerError)
			return
		}

		entries, err := s.storage.GetSchedule(teamName)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error fetching schedule: %v", err), http.StatusInternalServerError)
			return
		}

		notified, err := s.storage.GetAllNotifiedEntries()
		if err != nil {
			http.Error(w, fmt.Sprintf("Error fetching notified entries: %v", err), http.StatusInternalServerError)
			return
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Start.Before(entries[j].Start)
		})

		sort.Slice(notified, func(i, j int) bool {
			return notified[i].NotifiedAt.After(notified[j].NotifiedAt)
		})

		now := time.Now()
		data := PageData{
			Entries:         entries,
			NotifiedEntries: notified,
			CurrentTime:     now.Format("2006-01-02 15:04:05 MST"),
			Now:             now,
			TeamName:        teamName,
		}

		if err := tmpl.Execute(w, data); err != nil {
			http.Error(w, fmt.Sprintf("Template execution error: %v", err), http.StatusInternalServerError)
		}
	}
}

func (s *Server) handleAPISchedule(teamName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.storage.GetSchedule(teamName)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error fetching schedule: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

func (s *Server) handleAPINotified(w http.ResponseWriter, r *http.Request) {
	notified, err := s.storage.GetAllNotifiedEntries()
	if err != nil {
		http.Error(w, fmt.Sprintf("Error fetching notified entries: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notified)
}

func (s *Server) handleDeleteNotifiedEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entryID := r.FormValue("id")
	if entryID == "" {
		http.Error(w, "Entry ID is required", http.StatusBadRequest)
		return
	}

	if err := s.storage.DeleteNotifiedEntry(entryID); err != nil {
		http.Error(w, fmt.Sprintf("Error deleting notified entry: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("Deleted notified entry: %s", entryID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
