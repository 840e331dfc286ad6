package cli

import (
	"fmt"

	"github.com/andrescamacho/factory-planner/internal/infrastructure/config"
)

// resolveProject resolves the project name from arguments or defaults
// Priority: positional argument > user config default project
func resolveProject(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	if userCfg := loadUserConfig(); userCfg.DefaultProject != "" {
		return userCfg.DefaultProject, nil
	}

	return "", fmt.Errorf("no project specified: pass a project name, or set a default with 'factory-planner config set-project'")
}

// loadUserConfig returns the stored user preferences, or empty preferences
// when none can be read
func loadUserConfig() *config.UserConfig {
	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return &config.UserConfig{}
	}
	userCfg, err := handler.Load()
	if err != nil {
		return &config.UserConfig{}
	}
	return userCfg
}
