package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorly/internal/engine"
	"github.com/abhisek/tutorly/internal/logging"
	"github.com/abhisek/tutorly/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <user-id> <subject>",
	Short: "Analyze a user's learning pattern for a subject",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := logging.New(cfg.LogLevel, "console")

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		eng := engine.New(st.HistoryRepo(), st.PatternRepo(), log)
		p, err := eng.Analyze(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}

		fmt.Printf("User:                   %s\n", p.UserID)
		fmt.Printf("Subject:                %s\n", p.Subject)
		fmt.Printf("Learning style:         %s\n", p.Style)
		fmt.Printf("Preferred hint type:    %s\n", p.PreferredHintType)
		fmt.Printf("Attention span:         %s\n", p.AttentionSpan)
		fmt.Printf("Improvement rate:       %+.2f\n", p.ImprovementRate)
		fmt.Printf("Recommended difficulty: %.1f\n", p.RecommendedDifficulty)
		if len(p.StrugglingAreas) > 0 {
			fmt.Printf("Struggling areas:       %s\n", strings.Join(p.StrugglingAreas, ", "))
		}
		if len(p.ImprovingAreas) > 0 {
			fmt.Printf("Improving areas:        %s\n", strings.Join(p.ImprovingAreas, ", "))
		}
		if len(p.ErrorPatterns) > 0 {
			fmt.Printf("Error patterns:         %s\n", strings.Join(p.ErrorPatterns, ", "))
		}

		if len(p.MasteryLevels) > 0 {
			topics := make([]string, 0, len(p.MasteryLevels))
			for t := range p.MasteryLevels {
				topics = append(topics, t)
			}
			sort.Strings(topics)
			fmt.Println("Mastery levels:")
			for _, t := range topics {
				fmt.Printf("  %-24s %.2f\n", t, p.MasteryLevels[t])
			}
		}
		return nil
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend <user-id> <subject>",
	Short: "Show content recommendations for a user and subject",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := logging.New(cfg.LogLevel, "console")

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		eng := engine.New(st.HistoryRepo(), st.PatternRepo(), log)
		recs, err := eng.Recommend(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("recommend: %w", err)
		}

		if len(recs) == 0 {
			fmt.Println("No recommendations (not enough history).")
			return nil
		}

		fmt.Printf("%-8s  %-12s  %-10s  %-6s  %s\n",
			"Priority", "Type", "Difficulty", "Mins", "Topics")
		fmt.Println(strings.Repeat("─", 72))
		for _, r := range recs {
			fmt.Printf("%-8s  %-12s  %-10.1f  %-6d  %s\n",
				r.Priority, r.PracticeType, r.DifficultyLevel,
				r.EstimatedTime, strings.Join(r.Topics, ", "))
		}
		return nil
	},
}
