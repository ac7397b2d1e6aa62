package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/pkg/executor"
	"github.com/spf13/cobra"
)

func newDoctorCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}

			if ok := doctor(cmd.OutOrStdout(), cfg, executor.New()); ok {
				fmt.Fprintln(cmd.OutOrStdout(), "\nAll prerequisites met. Ready to run!")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}

// doctor prints one line per check and reports whether all passed.
func doctor(w io.Writer, cfg *config.Config, exec executor.Executor) bool {
	ok := true
	check := func(name string, passed bool, detail string) {
		mark := "✓"
		if !passed {
			mark = "✗"
			ok = false
		}
		fmt.Fprintf(w, "%s %s: %s\n", mark, name, detail)
	}

	validateErr := cfg.Validate()

	for _, bin := range []string{cfg.FFmpeg.BinaryPath, cfg.FFmpeg.ProbePath} {
		if exec.Available(bin) {
			check(bin, true, "installed")
		} else {
			check(bin, false, "not found on PATH")
		}
	}

	switch {
	case cfg.Google.ServiceAccountPath == "":
		check("Service account", false, "not set. Set GOOGLE_SERVICE_ACCOUNT or google.service_account_path")
	case !fileExists(cfg.Google.ServiceAccountPath):
		check("Service account", false, cfg.Google.ServiceAccountPath+" does not exist")
	default:
		check("Service account", true, cfg.Google.ServiceAccountPath)
	}

	check("OpenAI API key", cfg.OpenAI.APIKey != "", configured(cfg.OpenAI.APIKey != "", "OPENAI_API_KEY"))
	check("Google Sheet", cfg.Sheet.ID != "", configured(cfg.Sheet.ID != "", "GOOGLE_SHEET"))
	check("Audio destination folder", cfg.Drive.AudioFolderID != "", configured(cfg.Drive.AudioFolderID != "", "GOOGLE_DRIVE_FOLDER_ID"))

	if cfg.Drive.AudioParentFolderID != "" {
		check("Audio parent folder", true, "configured")
	} else {
		fmt.Fprintln(w, "- Audio parent folder: not set, rows without an audio folder will be skipped")
	}

	if cfg.LLM.Provider == config.ProviderGemini {
		check("Gemini API keys", len(cfg.Gemini.APIKeys) > 0, fmt.Sprintf("%d configured", len(cfg.Gemini.APIKeys)))
	}

	if validateErr != nil {
		check("Config", false, validateErr.Error())
	} else {
		check("Config", true, "valid")
	}

	return ok
}

func configured(set bool, env string) string {
	if set {
		return "configured"
	}
	return "not set. Set " + env + " or add to config"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
