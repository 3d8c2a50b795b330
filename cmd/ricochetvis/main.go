// Command ricochetvis shows a problem board in a window and animates a
// solver plan over it. Space toggles playback, the arrow keys step and
// change speed, Home rewinds.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/ricochet-research/internal/encoding"
	"github.com/elektrokombinacija/ricochet-research/internal/plan"
	"github.com/elektrokombinacija/ricochet-research/internal/vis"
)

func main() {
	problemFile := flag.String("problem", "", "Problem file (asp, pddl or compact format)")
	planFile := flag.String("plan", "", "Optional plan file to animate")
	flag.Parse()

	if *problemFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*problemFile)
	if err != nil {
		log.Fatal(err)
	}
	text := string(data)
	p, err := encoding.Decode(text, encoding.Sniff(text))
	if err != nil {
		log.Fatal(err)
	}

	var moves plan.Plan
	if *planFile != "" {
		data, err := os.ReadFile(*planFile)
		if err != nil {
			log.Fatal(err)
		}
		moves, err = decodePlan(string(data))
		if err != nil {
			log.Fatal(err)
		}
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Ricochet Robots"),
			app.Size(unit.Dp(900), unit.Dp(960)),
		)

		application, err := vis.NewApp(p, moves)
		if err != nil {
			log.Fatal(err)
		}
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func decodePlan(text string) (plan.Plan, error) {
	if strings.Contains(text, "(go") {
		return plan.DecodePlanFile(text)
	}
	if moves, _, err := plan.DecodeSolverOutput(text); err == nil {
		return moves, nil
	}
	return plan.DecodeASPOutput(text)
}
