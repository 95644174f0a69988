package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"youth_policy_ai/config"
	"youth_policy_ai/corpus"
	"youth_policy_ai/models"
	"youth_policy_ai/recommend"
	"youth_policy_ai/repository"
	"youth_policy_ai/services"
)

type profileFlags struct {
	age       int
	major     string
	interests []string
	location  string
	topK      int
}

func (f *profileFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.age, "age", 0, "User age (15-39, required)")
	cmd.Flags().StringVar(&f.major, "major", "", "Major")
	cmd.Flags().StringSliceVar(&f.interests, "interests", nil, "Comma separated interests")
	cmd.Flags().StringVar(&f.location, "location", "", "Residence region")
	cmd.Flags().IntVarP(&f.topK, "top-k", "k", 5, "Number of recommendations")

	if err := cmd.MarkFlagRequired("age"); err != nil {
		panic(fmt.Sprintf("failed to mark age flag as required: %v", err))
	}
}

func (f *profileFlags) profile() models.UserProfile {
	return models.UserProfile{
		Age:       f.age,
		Major:     f.major,
		Interests: f.interests,
		Location:  f.location,
	}
}

// loadConfig --config 와 --corpus 플래그를 반영한 설정
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if path, _ := cmd.Flags().GetString("corpus"); path != "" {
		cfg.Corpus.Source = "file"
		cfg.Corpus.Path = path
	}
	return cfg, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func newRecommendCmd() *cobra.Command {
	var flags profileFlags
	var seed int64

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend policies for a profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			c, embedder, err := services.BuildCorpus(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to build corpus: %w", err)
			}
			if seed == 0 {
				seed = cfg.Recommend.Seed
			}
			engine, err := recommend.NewEngine(c, embedder, recommend.Options{
				MaxCacheSize: cfg.Recommend.MaxCacheSize,
				Seed:         seed,
			})
			if err != nil {
				return err
			}

			result, err := engine.Recommend(cmd.Context(), flags.profile(), flags.topK)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
	flags.bind(cmd)
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for pool sampling (0 uses config or time)")
	return cmd
}

func newFingerprintCmd() *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the cache key for a profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := recommend.Fingerprint(flags.profile(), flags.topK)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}
	flags.bind(cmd)
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [policies.json]",
		Short: "Validate a normalized policy file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path := cfg.Corpus.Path
			if len(args) == 1 {
				path = args[0]
			}

			policies, err := repository.LoadPoliciesFromFile(path)
			if err != nil {
				return err
			}
			// 서버 기동과 같은 검사 (ID 중복 등)
			if _, err := corpus.New(policies, nil); err != nil {
				return fmt.Errorf("invalid corpus %s: %w", path, err)
			}

			counts := make(map[string]int)
			for _, p := range policies {
				counts[string(p.Category)]++
			}
			var parts []string
			for _, cat := range models.AllCategories() {
				parts = append(parts, fmt.Sprintf("%s=%d", cat, counts[string(cat)]))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d policies OK (%s)\n", len(policies), strings.Join(parts, ", "))
			return err
		},
	}
}
