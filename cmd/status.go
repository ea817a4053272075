package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/event-finder/internal/registration"
	"github.com/spf13/cobra"
)

var (
	statusSessions    []string
	statusPeriodStart string
	statusNow         string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Classify registration sessions",
	Long: `Classify prints the registration status of an event.

Each --session is "open,close" in RFC 3339. Either side may be empty for
an unbounded session. --period-start is the event's first day.

Examples:
  event-finder status --period-start 2025-02-01 \
    --session 2025-01-20T09:00:00+09:00,2025-01-25T18:00:00+09:00

  # first-come-served
  event-finder status --period-start 2025-02-01 --session 2025-01-10T09:00:00+09:00,`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions := make([]registration.Session, 0, len(statusSessions))
		for _, v := range statusSessions {
			s, err := parseSession(v)
			if err != nil {
				return err
			}
			sessions = append(sessions, s)
		}
		registration.SortSessions(sessions)

		start, err := time.ParseInLocation(time.DateOnly, statusPeriodStart, cfg.Location)
		if err != nil {
			return fmt.Errorf("--period-start: %w", err)
		}
		now := time.Now()
		if statusNow != "" {
			if now, err = time.Parse(time.RFC3339, statusNow); err != nil {
				return fmt.Errorf("--now: %w", err)
			}
		}

		status := registration.Classify(sessions, start, now)
		out, err := json.Marshal(status)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringArrayVarP(&statusSessions, "session", "s", nil, "Registration session as open,close (repeatable)")
	statusCmd.Flags().StringVar(&statusPeriodStart, "period-start", "", "First day of the event (YYYY-MM-DD)")
	statusCmd.Flags().StringVar(&statusNow, "now", "", "Evaluate at this instant instead of the current time (RFC 3339)")
	_ = statusCmd.MarkFlagRequired("period-start")
}

// parseSession parses "open,close" where either bound may be empty.
func parseSession(v string) (registration.Session, error) {
	openStr, closeStr, ok := strings.Cut(v, ",")
	if !ok {
		return registration.Session{}, fmt.Errorf("session %q: want open,close", v)
	}
	var s registration.Session
	for _, b := range []struct {
		raw string
		dst **time.Time
	}{{openStr, &s.Open}, {closeStr, &s.Close}} {
		raw := strings.TrimSpace(b.raw)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return registration.Session{}, fmt.Errorf("session %q: %w", v, err)
		}
		*b.dst = &t
	}
	if s.Open != nil && s.Close != nil && s.Close.Before(*s.Open) {
		return registration.Session{}, fmt.Errorf("session %q closes before it opens", v)
	}
	return s, nil
}
