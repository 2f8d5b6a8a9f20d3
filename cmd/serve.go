package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/apptitude/internal/llm"
	"github.com/abhisek/apptitude/internal/logger"
	"github.com/abhisek/apptitude/internal/quizgen"
	"github.com/abhisek/apptitude/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the question service",
	Long:  "Run the HTTP service that generates math questions and grades answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// API keys are usually kept in .env during development.
		_ = godotenv.Load()

		cfg, err := server.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log := logger.New(cfg.LoggerConfig())
		defer log.Sync() //nolint:errcheck

		provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, log)
		if err != nil {
			return fmt.Errorf("init model provider: %w", err)
		}

		genCfg := quizgen.DefaultConfig()
		gen := quizgen.NewGenerator(provider, genCfg, log)
		grader := quizgen.NewGrader(provider, genCfg, log)

		srv := server.New(gen, grader, log)
		log.Info("question service listening",
			zap.Int("port", cfg.Port),
			zap.String("provider", cfg.LLM.Provider),
		)
		return srv.Listen(cfg.Port)
	},
}
