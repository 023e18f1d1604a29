package lifecycle

import (
	"barrel/core/logger"
	"barrel/core/registry"
)

// Hooks is the contract the host build system drives. Each hook maps onto
// one registry entry point; done, when non-nil, is signalled after the hook
// finishes so the host can resume its build.
type Hooks struct {
	OnEnvironmentInit func()
	OnBuildStart      func(done func())
	OnWatchRebuild    func(done func())
}

// Bind builds Hooks around a Registry. Registry failures are reported and
// absorbed here: the host build always proceeds, a missing barrel surfaces
// later as an ordinary compile error in the host's own output.
func Bind(reg *registry.Registry, log logger.Logger) Hooks {
	log = logger.OrNop(log)

	build := func(done func()) {
		changed, _, err := reg.DetectChanges()
		if err != nil {
			log.Error("Change detection failed: %v", err)
		} else if changed {
			if _, err := reg.Regenerate(); err != nil {
				log.Debug("Regeneration failed, will retry on next build: %v", err)
			}
		} else {
			log.Trace("No component changes detected")
		}
		if done != nil {
			done()
		}
	}

	return Hooks{
		OnEnvironmentInit: func() {
			if _, err := reg.InitialScan(); err != nil {
				log.Debug("Initial scan failed, will retry on next build: %v", err)
			}
		},
		OnBuildStart:   build,
		OnWatchRebuild: build,
	}
}
