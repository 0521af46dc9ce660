package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/debtwise/payoff/internal/domain"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

// Swappable in tests.
var bcryptGenerate = bcrypt.GenerateFromPassword

func main() {
	rootCmd := &cobra.Command{
		Use:   "payoff-cli",
		Short: "Debtwise payoff CLI tool",
		Long:  `A command line interface for debt payoff planning, locally or against the Debtwise API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Debtwise API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated APIs")

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Payoff planning",
	}
	planCmd.AddCommand(breakdownCmd(), estimateCmd(), compareCmd())
	rootCmd.AddCommand(planCmd)

	debtsCmd := &cobra.Command{
		Use:   "debts",
		Short: "Debt operations",
	}
	debtsCmd.AddCommand(listDebtsCmd())
	rootCmd.AddCommand(debtsCmd)

	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// breakdownCmd splits one payment into interest and principal without
// touching the API; the arithmetic is identical to the server's.
func breakdownCmd() *cobra.Command {
	var balance, rate, payment string

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Split a payment into interest and principal",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := decimal.NewFromString(balance)
			if err != nil {
				return fmt.Errorf("invalid balance: %w", err)
			}
			r, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("invalid rate: %w", err)
			}
			p, err := decimal.NewFromString(payment)
			if err != nil {
				return fmt.Errorf("invalid payment: %w", err)
			}

			if err := domain.ValidateBalance(b); err != nil {
				return err
			}
			if err := domain.ValidateRate(r); err != nil {
				return err
			}
			if err := domain.ValidatePaymentAmount(p); err != nil {
				return err
			}

			printJSON(domain.ComputeBreakdown(b, r, p))
			return nil
		},
	}

	cmd.Flags().StringVar(&balance, "balance", "", "Current balance")
	cmd.Flags().StringVar(&rate, "rate", "", "Annual interest rate in percent")
	cmd.Flags().StringVar(&payment, "payment", "", "Payment amount")
	cmd.MarkFlagRequired("balance")
	cmd.MarkFlagRequired("rate")
	cmd.MarkFlagRequired("payment")

	return cmd
}

func estimateCmd() *cobra.Command {
	var balance, rate, minimum string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate months to payoff at the minimum payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := decimal.NewFromString(balance)
			if err != nil {
				return fmt.Errorf("invalid balance: %w", err)
			}
			r, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("invalid rate: %w", err)
			}
			m, err := decimal.NewFromString(minimum)
			if err != nil {
				return fmt.Errorf("invalid minimum: %w", err)
			}

			debt := &domain.Debt{
				Balance:           b,
				AnnualRatePercent: r,
				MinimumPayment:    m,
			}

			estimate := domain.EstimatePayoff(debt)
			if !estimate.PaysOff {
				fmt.Println("This debt never pays off at its minimum payment.")
				return nil
			}

			printJSON(estimate)
			return nil
		},
	}

	cmd.Flags().StringVar(&balance, "balance", "", "Current balance")
	cmd.Flags().StringVar(&rate, "rate", "", "Annual interest rate in percent")
	cmd.Flags().StringVar(&minimum, "minimum", "", "Minimum monthly payment")
	cmd.MarkFlagRequired("balance")
	cmd.MarkFlagRequired("rate")
	cmd.MarkFlagRequired("minimum")

	return cmd
}

func compareCmd() *cobra.Command {
	var extra string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare avalanche and snowball over your debts",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := fmt.Sprintf(`{"extra_payment":%q}`, extra)
			return apiPost("/api/v1/plans/compare", body)
		},
	}

	cmd.Flags().StringVar(&extra, "extra", "0", "Extra monthly payment beyond minimums")

	return cmd
}

func listDebtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your debts",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiGet("/api/v1/debts/")
			if err != nil {
				return err
			}

			var page struct {
				Debts []struct {
					ID             string `json:"id"`
					Name           string `json:"name"`
					Balance        string `json:"balance"`
					RatePercent    string `json:"annual_rate_percent"`
					MinimumPayment string `json:"minimum_payment"`
				} `json:"debts"`
			}
			if err := json.Unmarshal(resp, &page); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Printf("%-28s %-20s %12s %8s %10s\n", "ID", "NAME", "BALANCE", "RATE", "MINIMUM")
			for _, d := range page.Debts {
				fmt.Printf("%-28s %-20s %12s %7s%% %10s\n",
					truncate(d.ID, 28), truncate(d.Name, 20), d.Balance, d.RatePercent, d.MinimumPayment)
			}
			return nil
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Hash a password for seeding users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func apiGet(path string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return doRequest(req)
}

func apiPost(path, body string) error {
	req, err := http.NewRequest(http.MethodPost, baseURL+path, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := doRequest(req)
	if err != nil {
		return err
	}

	var pretty any
	if err := json.Unmarshal(resp, &pretty); err != nil {
		fmt.Println(string(resp))
		return nil
	}
	printJSON(pretty)
	return nil
}

func doRequest(req *http.Request) ([]byte, error) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render output: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
