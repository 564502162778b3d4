package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/ttacon/chalk"

	"github.com/amindell11/astronomical-home-sub002/common/utils"
	"github.com/amindell11/astronomical-home-sub002/common/utils/number"
	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/skirmish"
	"github.com/amindell11/astronomical-home-sub002/telemetry"
)

func main() {
	ships := flag.Int("ships", 2, "Number of AI combatants")
	obstacles := flag.Int("obstacles", 6, "Number of static obstacles")
	width := flag.Float64("width", 400, "Arena width in meters")
	height := flag.Float64("height", 400, "Arena height in meters")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Simulation seed")
	tps := flag.Int("tps", 20, "Simulation ticks per second")
	duration := flag.Int("duration", 0, "Simulation length in seconds; 0 runs until interrupted")
	listenAddr := flag.String("listen", ":8090", "Telemetry listen address")

	flag.Parse()

	utils.Assert(*ships >= 1, "ships must be at least 1")
	utils.Assert(*obstacles >= 0, "obstacles cannot be negative")
	utils.Assert(*width > 0 && *height > 0, "arena dimensions must be strictly positive")
	utils.Assert(*tps >= 1, "tps must be at least 1")

	log.Println("Arena Sim " + utils.GetVersion())

	cfg := skirmish.DefaultArenaConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	cfg.Tps = *tps

	game := skirmish.NewSkirmishGame(cfg)

	// shutdown and event plumbing, hooked up before anything can spawn
	stopped := make(chan interface{})
	notify.Start("sim:stopped", stopped)

	spawned := make(chan interface{})
	notify.Start(skirmish.EventShipSpawned, spawned)
	go func() {
		for payload := range spawned {
			if event, ok := payload.(skirmish.ShipSpawnedPayload); ok {
				log.Println(chalk.Green.Color("SPAWNED"), event.Callsign)
			}
		}
	}()

	destroyed := make(chan interface{})
	notify.Start(skirmish.EventShipDestroyed, destroyed)
	go func() {
		for payload := range destroyed {
			if event, ok := payload.(skirmish.ShipDestroyedPayload); ok {
				log.Println(chalk.Red.Color("DESTROYED"), event.Callsign, "at tick", event.Tick)
			}
		}
	}()

	rng := rand.New(rand.NewSource(*seed))
	populateArena(game, rng, cfg, *ships, *obstacles)

	go func() {
		<-utils.SignalHandler()
		utils.Debug("sighandler", "RECEIVED SHUTDOWN SIGNAL; closing.")
		notify.PostTimeout("sim:stopped", nil, time.Millisecond)
	}()

	service := telemetry.NewTelemetryService(*listenAddr, func() interface{} {
		return map[string]interface{}{
			"tick":  game.Tick(),
			"ships": *ships,
			"seed":  *seed,
		}
	})
	go func() {
		err := service.ListenAndServe()
		utils.Check(err, "Could not serve telemetry on "+*listenAddr)
	}()

	if *duration > 0 {
		timeoutTimer := time.NewTimer(time.Duration(*duration) * time.Second)
		go func() {
			<-timeoutTimer.C
			utils.Debug("timer", "Duration elapsed, stopping the arena")
			notify.PostTimeout("sim:stopped", nil, time.Millisecond)
		}()
	}

	dt := 1.0 / float64(cfg.Tps)
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	for {
		select {
		case <-stopped:
			log.Println("Simulation stopped at tick", game.Tick())
			printScoreboard(game)
			return
		case <-ticker.C:
			game.Step(dt)
			telemetry.PublishFrame(game.FrameJSON())
		}
	}
}

// populateArena scatters combatants on a ring and obstacles across the field.
func populateArena(game *skirmish.SkirmishGame, rng *rand.Rand, cfg skirmish.ArenaConfig, ships int, obstacles int) {
	spawnRadius := math.Min(cfg.Width, cfg.Height) * 0.3

	for i := 0; i < ships; i++ {
		angle := 2 * math.Pi * float64(i) / float64(ships)
		pos := vector.MakeVector2(math.Cos(angle), math.Sin(angle)).MultScalar(spawnRadius)

		if _, err := game.NewEntityShip(pos); err != nil {
			utils.FailWith(err)
		}
	}

	for i := 0; i < obstacles; i++ {
		pos := vector.MakeVector2(
			(rng.Float64()-0.5)*cfg.Width*0.8,
			(rng.Float64()-0.5)*cfg.Height*0.8,
		)
		radius := 3 + rng.Float64()*5

		// keep rocks off the spawn ring
		if math.Abs(pos.Mag()-spawnRadius) < 15 {
			pos = pos.MultScalar(0.5)
		}

		game.NewEntityObstacle(pos, radius)
	}
}

func printScoreboard(game *skirmish.SkirmishGame) {
	standings := game.Standings()

	log.Println(chalk.Cyan.Color("SCOREBOARD"), len(standings), "ship(s) still flying")

	for _, standing := range standings {
		log.Printf(
			"%s hull %s shield %s",
			chalk.Green.Color(standing.Callsign),
			number.FloatToStr(standing.Hull*100, 0)+"%",
			number.FloatToStr(standing.Shield*100, 0)+"%",
		)
	}
}
