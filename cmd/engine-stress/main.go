// engine-stress populates a world with generated components and
// systems and hammers Update for a fixed duration, then prints a
// performance report. Regenerate the workload with cmd/stress-gen.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/plus3/grit/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 2500, "The initial number of entities to create.")
	profileMode := flag.String("profile", "", "Write a profile: cpu or mem.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(".")).Stop()
	case "":
	default:
		log.Fatal("unknown profile mode", zap.String("mode", *profileMode))
	}

	log.Info("starting stress test",
		zap.Duration("duration", *duration),
		zap.Int("entities", *entityCount),
		zap.Int("components", stressComponentCount),
		zap.Int("systems", stressSystemCount),
	)

	world := ecs.NewWorld(ecs.Config{
		MaxEntities:       *entityCount + 1,
		MaxComponentTypes: stressComponentCount,
	})
	RegisterStressComponents(world)
	RegisterStressSystems(world)

	log.Info("populating world")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < *entityCount; i++ {
		SpawnStressEntity(world, rng, rng.Intn(5)+1)
	}
	log.Info("population complete", zap.Int("live", world.LiveCount()))

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     stressComponentCount,
		Systems:        stressSystemCount,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrame := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			dt := time.Since(lastFrame)
			lastFrame = time.Now()

			updateStart := time.Now()
			world.Update(dt.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.SystemTimings = world.SystemStatsSnapshot()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("simulation finished", zap.Int64("updates", report.TotalUpdates))

	fmt.Println("\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal("generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}
