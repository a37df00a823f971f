package http

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-planner/internal/club"
	"github.com/mauv0809/court-planner/internal/processor"
	"github.com/mauv0809/court-planner/internal/reservation"
	"github.com/slack-go/slack"
)

const (
	singlesLadderTitle = "Ladder enkel"
	doublesLadderTitle = "Ladder dubbel"
)

// pushMessage is the envelope of a Pub/Sub push delivery.
type pushMessage struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data string `json:"data"` // base64-encoded msgpack payload
	} `json:"message"`
}

// ScheduleReplacedHandler receives schedule-replaced events pushed by
// Pub/Sub and posts the affected weeks to Slack.
func (s *Server) ScheduleReplacedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received schedule-replaced message", "body", string(bodyBytes))

		var msg pushMessage
		if err := json.Unmarshal(bodyBytes, &msg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		rawData, err := base64.StdEncoding.DecodeString(msg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		var event processor.ScheduleReplaced
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			log.Error("Failed to decode schedule-replaced event", "error", err)
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if err := s.Processor.HandleScheduleReplaced(event, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to handle schedule-replaced event", "error", err)
			http.Error(w, "Failed to post schedule", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// respondWithSlackMsg writes a formatted Slack message as the HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// parseLadderText splits "/ladder [enkel|dubbel] [player name]".
func parseLadderText(text string) (reservation.MatchType, string) {
	parts := strings.Fields(text)
	matchType := reservation.Single
	if len(parts) > 0 {
		switch strings.ToLower(parts[0]) {
		case "enkel", "singles":
			parts = parts[1:]
		case "dubbel", "doubles":
			matchType = reservation.Double
			parts = parts[1:]
		}
	}
	return matchType, strings.Join(parts, " ")
}

// LadderCommandHandler serves the /ladder slash command: the full ladder, or
// one player's standing when a name follows the ladder kind.
func (s *Server) LadderCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		matchType, query := parseLadderText(cmd.Text)
		title := ladderTitle(matchType)
		log.Info("Received ladder command", "user", cmd.UserName, "match_type", matchType, "player", query)

		standings, err := s.ladder(matchType)
		if err != nil {
			log.Error("Failed to build ladder", "error", err)
			http.Error(w, "Failed to build ladder", http.StatusInternalServerError)
			return
		}

		var msg any
		if query == "" {
			msg, err = s.Notifier.FormatLadderResponse(title, standings)
		} else {
			msg, err = s.playerStanding(title, query, standings)
		}
		if err != nil {
			log.Error("Failed to format ladder", "error", err)
			http.Error(w, "Failed to format ladder", http.StatusInternalServerError)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}

// PostLadderHandler posts a ladder to the Slack channel.
func (s *Server) PostLadderHandler(matchType reservation.MatchType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := s.ladder(matchType)
		if err != nil {
			log.Error("Failed to build ladder", "error", err, "match_type", matchType)
			http.Error(w, "Failed to build ladder", http.StatusInternalServerError)
			return
		}
		if err := s.Notifier.SendLadder(ladderTitle(matchType), standings, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to post ladder", "error", err, "match_type", matchType)
			http.Error(w, "Failed to post ladder", http.StatusBadGateway)
			return
		}
		w.Write([]byte("OK"))
	}
}

func ladderTitle(matchType reservation.MatchType) string {
	if matchType == reservation.Double {
		return doublesLadderTitle
	}
	return singlesLadderTitle
}

func (s *Server) playerStanding(title, query string, standings []club.Standing) (any, error) {
	name, suggestions := s.Roster.Resolve(query)
	if name == "" {
		log.Warn("Could not resolve player", "query", query, "suggestions", len(suggestions))
		return s.Notifier.FormatPlayerNotFoundResponse(query, suggestions)
	}
	for i, st := range standings {
		if st.Player == name {
			return s.Notifier.FormatPlayerStandingResponse(title, st, i)
		}
	}
	return s.Notifier.FormatPlayerNotFoundResponse(query, nil)
}
