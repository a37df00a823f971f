package http

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-planner/internal/club"
	"github.com/mauv0809/court-planner/internal/export"
	"github.com/mauv0809/court-planner/internal/inbox"
	"github.com/mauv0809/court-planner/internal/reservation"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// StatsHandler serves the persistent counters.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Counters.GetAll()
		if err != nil {
			log.Error("Failed to get stats", "error", err)
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Players.GetAllPlayers()
		if err != nil {
			log.Error("Failed to get players from store", "error", err)
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) SeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, seasonResponse{
			Dates:     s.Season.Dates(),
			TimeSlots: s.Season.TimeSlots(),
			Courts:    s.Season.Courts(),
		})
	}
}

func (s *Server) ListReservationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		var (
			reservations []reservation.Reservation
			err          error
		)
		if date != "" {
			reservations, err = s.Store.GetByDate(date)
		} else {
			reservations, err = s.Store.GetAll()
		}
		if err != nil {
			log.Error("Failed to get reservations from store", "error", err, "date", date)
			http.Error(w, "Failed to get reservations", http.StatusInternalServerError)
			return
		}
		if reservations == nil {
			reservations = []reservation.Reservation{}
		}
		writeJSON(w, http.StatusOK, reservations)
	}
}

func (s *Server) JoinHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req joinRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slot, ok := s.validateCourt(w, req.courtRequest)
		if !ok {
			return
		}
		player, ok := s.resolvePlayer(w, req.Player)
		if !ok {
			return
		}
		if req.MatchType == "" {
			req.MatchType = reservation.Double
		}
		if req.Category == "" {
			req.Category = reservation.Training
		}
		if !req.MatchType.Valid() || !req.Category.Valid() {
			writeError(w, http.StatusBadRequest, "invalid match type or category")
			return
		}

		res, err := s.Processor.Join(slot, req.Court, req.MatchType, req.Category, player)
		if err != nil {
			writeDomainError(w, "join court", err)
			return
		}
		log.Info("Player joined court", "player", player, "slot", slot, "court", req.Court)
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) LeaveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leaveRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slot, ok := s.validateCourt(w, req.courtRequest)
		if !ok {
			return
		}
		player, ok := s.resolvePlayer(w, req.Player)
		if !ok {
			return
		}
		res, err := s.Store.Leave(slot, req.Court, player)
		if err != nil {
			writeDomainError(w, "leave court", err)
			return
		}
		log.Info("Player left court", "player", player, "slot", slot, "court", req.Court)
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) ResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resultRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slot, ok := s.validateCourt(w, req.courtRequest)
		if !ok {
			return
		}
		if len(req.Winners) == 0 {
			writeError(w, http.StatusBadRequest, "winners are required")
			return
		}
		winners := make([]string, 0, len(req.Winners))
		for _, input := range req.Winners {
			name, ok := s.resolvePlayer(w, input)
			if !ok {
				return
			}
			winners = append(winners, name)
		}
		res, err := s.Processor.RecordResult(slot, req.Court, winners)
		if err != nil {
			writeDomainError(w, "record result", err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) RemoveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req courtRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slot, ok := s.validateCourt(w, req)
		if !ok {
			return
		}
		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would have removed reservation", "slot", slot, "court", req.Court)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := s.Store.Remove(slot, req.Court); err != nil {
			writeDomainError(w, "remove reservation", err)
			return
		}
		log.Info("Removed reservation", "slot", slot, "court", req.Court)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ClearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would have cleared all reservations")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		log.Info("Received request to clear all reservations")
		if err := s.Store.ClearAll(); err != nil {
			log.Error("Failed to clear reservations", "error", err)
			http.Error(w, "Failed to clear reservations", http.StatusInternalServerError)
			return
		}
		log.Info("Reservations cleared successfully")
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ToggleAvailabilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req availabilityRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slot, ok := s.validateSlot(w, req.Date, req.TimeSlot)
		if !ok {
			return
		}
		player, ok := s.resolvePlayer(w, req.Player)
		if !ok {
			return
		}
		available, err := s.Store.ToggleAvailability(slot, player)
		if err != nil {
			writeDomainError(w, "toggle availability", err)
			return
		}
		log.Info("Toggled availability", "player", player, "slot", slot, "available", available)
		writeJSON(w, http.StatusOK, availabilityResponse{
			Player:    player,
			Date:      slot.Date,
			TimeSlot:  slot.TimeSlot,
			Available: available,
		})
	}
}

func (s *Server) PlanSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := s.Processor.PlanSeason(isDryRunFromContext(r))
		if err != nil {
			writeDomainError(w, "plan season", err)
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}

// PlanWeekHandler plans one date. With async=true the run is handed to the
// durable plan-week function instead.
func (s *Server) PlanWeekHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			writeError(w, http.StatusBadRequest, "date is required")
			return
		}
		dryRun := isDryRunFromContext(r)

		if r.URL.Query().Get("async") == "true" {
			if s.inngest == nil {
				writeError(w, http.StatusServiceUnavailable, "async planning is not configured")
				return
			}
			if !s.Season.Contains(date) {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not a play date", date))
				return
			}
			if err := s.inngest.SendPlanWeek(r.Context(), date, dryRun); err != nil {
				log.Error("Failed to queue week plan", "date", date, "error", err)
				http.Error(w, "Failed to queue week plan", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued", "date": date})
			return
		}

		plan, err := s.Processor.PlanWeek(date, dryRun)
		if err != nil {
			writeDomainError(w, "plan week", err)
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}

func (s *Server) LadderHandler(matchType reservation.MatchType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := s.ladder(matchType)
		if err != nil {
			log.Error("Failed to build ladder", "error", err, "match_type", matchType)
			http.Error(w, "Failed to build ladder", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, standings)
	}
}

func (s *Server) ladder(matchType reservation.MatchType) ([]club.Standing, error) {
	all, err := s.Store.GetAll()
	if err != nil {
		return nil, err
	}
	if matchType == reservation.Double {
		return club.DoublesLadder(s.Roster, all), nil
	}
	return club.SinglesLadder(s.Roster, all), nil
}

func (s *Server) ListMessagesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, ok := s.resolvePlayer(w, r.URL.Query().Get("player"))
		if !ok {
			return
		}
		messages, err := s.Inbox.ListFor(player)
		if err != nil {
			log.Error("Failed to list messages", "player", player, "error", err)
			http.Error(w, "Failed to list messages", http.StatusInternalServerError)
			return
		}
		unread, err := s.Inbox.UnreadCount(player)
		if err != nil {
			log.Error("Failed to count unread messages", "player", player, "error", err)
			http.Error(w, "Failed to list messages", http.StatusInternalServerError)
			return
		}
		if messages == nil {
			messages = []inbox.Message{}
		}
		writeJSON(w, http.StatusOK, messagesResponse{Player: player, Unread: unread, Messages: messages})
	}
}

func (s *Server) MarkMessagesReadHandler() http.HandlerFunc {
	return s.inboxAction("mark messages read", func(player string) error {
		return s.Inbox.MarkAllRead(player)
	})
}

func (s *Server) ClearMessagesHandler() http.HandlerFunc {
	return s.inboxAction("clear messages", func(player string) error {
		return s.Inbox.ClearFor(player)
	})
}

func (s *Server) inboxAction(action string, apply func(player string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		player, ok := s.resolvePlayer(w, req.Player)
		if !ok {
			return
		}
		if err := apply(player); err != nil {
			log.Error("Failed to "+action, "player", player, "error", err)
			http.Error(w, "Failed to "+action, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ExportHandler streams the season workbook.
func (s *Server) ExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := s.Store.GetAll()
		if err != nil {
			log.Error("Failed to get reservations from store", "error", err)
			http.Error(w, "Failed to export", http.StatusInternalServerError)
			return
		}
		f, err := export.Workbook(s.Season, s.Roster, all)
		if err != nil {
			log.Error("Failed to build workbook", "error", err)
			http.Error(w, "Failed to export", http.StatusInternalServerError)
			return
		}
		defer f.Close()

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="court-planner.xlsx"`)
		if err := f.Write(w); err != nil {
			log.Error("Failed to write workbook", "error", err)
		}
	}
}
