package main

import (
	"fmt"
	"time"

	"github.com/Shivanand-hulikatti/event-finder/internal/auth"
	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenEmail   string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token signed with JWT_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := auth.NewProvider(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
		if err != nil {
			return err
		}
		tok, err := p.Issue(tokenSubject, tokenEmail)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Identity subject, e.g. kakao|12345")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Optional email claim")
	_ = tokenCmd.MarkFlagRequired("subject")
}
