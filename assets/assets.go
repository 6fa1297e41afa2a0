// Package assets embeds the sample levels and input scenarios.
package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/doomerang-movement/shared/leveldata"
)

var (
	//go:embed all:levels
	//go:embed all:scenarios
	FS embed.FS
)

// LevelsDir and ScenariosDir are the embedded directory names.
const (
	LevelsDir    = "levels"
	ScenariosDir = "scenarios"
)

// MustLoadLevels loads every embedded level, panicking on a broken asset.
func MustLoadLevels() (map[string]*leveldata.Level, []string) {
	levels, names, err := leveldata.LoadAll(FS, LevelsDir)
	if err != nil {
		panic(fmt.Sprintf("assets: %v", err))
	}
	return levels, names
}
