package main

import (
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lixenwraith/pixel-racer/config"
	"github.com/lixenwraith/pixel-racer/track"
)

// buildRegistry returns the generated ovals plus any manifests under track-dir
func buildRegistry(v *viper.Viper, logger *zap.Logger) (*track.Registry, error) {
	reg := track.NewRegistry()
	dir := v.GetString(config.KeyTrackDir)
	if dir == "" {
		return reg, nil
	}
	names, err := reg.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	logger.Info("tracks loaded", zap.String("dir", dir), zap.Strings("names", names))
	return reg, nil
}

// resolveTracks returns the rotation pool of cfg, widened by rotationPool
func resolveTracks(v *viper.Viper, cfg *config.RaceConfig, logger *zap.Logger) ([]*track.Geometry, error) {
	reg, err := buildRegistry(v, logger)
	if err != nil {
		return nil, err
	}
	cfg.Tracks = rotationPool(reg, cfg.Tracks)
	return reg.Resolve(cfg.Tracks)
}

// rotationPool appends the other registered tracks when fewer than two
// distinct tracks are named, so a track change always leads somewhere new
func rotationPool(reg *track.Registry, names []string) []string {
	names = lo.Uniq(names)
	if len(names) >= 2 {
		return names
	}
	return append(names, lo.Without(reg.Names(), names...)...)
}
