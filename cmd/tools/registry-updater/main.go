// cmd/tools/registry-updater/main.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"assessment-workers/internal/common/validation"
	"assessment-workers/pkg/registry"
)

var registryPath string

var rootCmd = &cobra.Command{
	Use:           "registry-updater",
	Short:         "Inspect and maintain the assessment activity registry",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check ids, task types and that every input schema compiles",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := registry.LoadRegistry(registryPath)
		if err != nil {
			return err
		}
		if len(reg.Activities) == 0 {
			return fmt.Errorf("registry contains no activities")
		}
		for _, a := range reg.Activities {
			if a.DisplayName == "" || a.Category == "" {
				return fmt.Errorf("activity %s: displayName and category are required", a.ID)
			}
			if _, ok := registry.ParseStatus(string(a.ImplementationStatus)); !ok {
				return fmt.Errorf("activity %s: unknown implementationStatus %q", a.ID, a.ImplementationStatus)
			}
		}
		if _, err := validation.NewSchemaValidator(reg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Registry validation passed. Found %d activities.\n", len(reg.Activities))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered task types",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := registry.LoadRegistry(registryPath)
		if err != nil {
			return err
		}
		activities := append([]registry.Activity(nil), reg.Activities...)
		sort.Slice(activities, func(i, j int) bool { return activities[i].TaskType < activities[j].TaskType })
		for _, a := range activities {
			fmt.Fprintf(cmd.OutOrStdout(), "%-30s %-38s %-12s %s\n", a.TaskType, a.ID, a.ImplementationStatus, a.Timeout)
		}
		return nil
	},
}

var setStatusCmd = &cobra.Command{
	Use:   "set-status <taskType> <status>",
	Short: "Update the implementation status of an activity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskType := args[0]
		status, ok := registry.ParseStatus(args[1])
		if !ok {
			names := make([]string, 0, len(registry.Statuses()))
			for _, st := range registry.Statuses() {
				names = append(names, string(st))
			}
			return fmt.Errorf("status must be one of %s", strings.Join(names, ", "))
		}
		reg, err := registry.LoadRegistry(registryPath)
		if err != nil {
			return err
		}
		a, ok := reg.Find(taskType)
		if !ok {
			return fmt.Errorf("no activity with task type %s", taskType)
		}
		a.ImplementationStatus = status
		reg.LastUpdated = time.Now().Format("2006-01-02")
		if err := reg.Save(registryPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s to %s\n", taskType, status)
		return nil
	},
}

var checkInputCmd = &cobra.Command{
	Use:   "check-input <taskType> <variables.json>",
	Short: "Validate sample job variables against a task type's input schema",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.LoadRegistry(registryPath)
		if err != nil {
			return err
		}
		validator, err := validation.NewSchemaValidator(reg)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		var vars map[string]interface{}
		if err := json.Unmarshal(data, &vars); err != nil {
			return fmt.Errorf("decode %s: %w", args[1], err)
		}
		result, err := validator.ValidateInput(args[0], vars)
		if err != nil {
			return err
		}
		if !result.Valid {
			for _, msg := range result.GetErrorMessages() {
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
			return fmt.Errorf("%d schema violations", len(result.Errors))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Input is valid.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&registryPath, "path", "configs/activity-registry.json", "path to the registry file")
	rootCmd.AddCommand(validateCmd, listCmd, setStatusCmd, checkInputCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
