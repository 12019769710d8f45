// Command lb is a link budget calculator for satellite communications and
// radar systems.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/wiless/linkbudget"
	"github.com/wiless/linkbudget/pointing"
)

const version = "0.1.1"

func main() {
	app := cli.NewApp()
	app.Name = "lb"
	app.Usage = "link budget calculator for satellite and radar links"
	app.Version = version
	app.Flags = appFlags()
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func appFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{Name: "json", Usage: "return results as a JSON record"},
		cli.StringFlag{Name: "config", Usage: "configuration file supplying flag defaults"},
		cli.StringFlag{Name: "model", Value: "ellipsoidal", Usage: "earth model: ellipsoidal or spherical"},
		cli.Float64Flag{Name: "eirp", Usage: "EIRP in dBW"},
		cli.Float64Flag{Name: "tx-power", Usage: "power feeding the Tx antenna in dBW"},
		cli.Float64Flag{Name: "tx-dish-size", Usage: "Tx parabolic dish diameter in m, with --tx-power"},
		cli.Float64Flag{Name: "tx-dish-gain", Usage: "Tx parabolic dish gain in dBi, with --tx-power"},
		cli.Float64Flag{Name: "freq", Usage: "downlink carrier frequency in Hz, or the signal frequency for radar"},
		cli.Float64Flag{Name: "if-bw", Usage: "IF bandwidth in Hz"},
		cli.Float64Flag{Name: "rx-dish-size", Usage: "Rx parabolic dish diameter in m"},
		cli.Float64Flag{Name: "rx-dish-gain", Usage: "Rx parabolic dish gain in dBi"},
		cli.Float64Flag{Name: "antenna-noise-temp", Usage: "Rx antenna noise temperature in K"},
		cli.Float64Flag{Name: "lnb-noise-fig", Usage: "LNB noise figure in dB"},
		cli.Float64Flag{Name: "lnb-noise-temp", Usage: "LNB noise temperature in K"},
		cli.Float64Flag{Name: "lnb-gain", Usage: "LNB gain in dB"},
		cli.Float64Flag{Name: "coax-length", Usage: "coaxial line length between LNB and receiver in ft"},
		cli.Float64Flag{Name: "rx-noise-fig", Usage: "receiver noise figure in dB"},
		cli.Float64Flag{Name: "sat-long", Usage: "satellite longitude, negative west and positive east"},
		cli.Float64Flag{Name: "rx-long", Usage: "Rx station longitude, negative west and positive east"},
		cli.Float64Flag{Name: "rx-lat", Usage: "Rx station latitude, negative south and positive north"},
		cli.BoolFlag{Name: "radar", Usage: "radar mode: account for the path to and back from the object"},
		cli.Float64Flag{Name: "radar-alt", Usage: "altitude of the radar object in m"},
		cli.Float64Flag{Name: "radar-cross-section", Usage: "radar cross section of the object in m2"},
		cli.BoolFlag{Name: "radar-bistatic", Usage: "bistatic radar: transmitter and receiver not collocated"},
	}
}

func run(c *cli.Context) error {
	s := linkbudget.NewSetting()

	if c.IsSet("config") {
		settings, err := ReadAppConfig(c.String("config"))
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		if err := s.DecodeMap(settings); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
	}

	if err := fillSetting(c, s); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	// The object-to-rx distance of the bistatic branch has no flag yet, so
	// the mode cannot be satisfied from the command line.
	// TODO: add a --radar-rx-dist flag and thread it into RadarRxDistM.
	if s.RadarBistatic && s.RadarRxDistM == nil {
		return cli.NewExitError(
			"bistatic radar mode needs the object-to-rx distance, which the command line does not accept yet", 1)
	}

	if c.Bool("json") {
		log.SetLevel(log.WarnLevel)
	} else {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}

	res, err := linkbudget.Analyze(*s)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	if c.Bool("json") {
		out, err := json.Marshal(res)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		fmt.Println(string(out))
		return nil
	}

	printReport(res)
	return nil
}

// fillSetting applies every flag present on the command line over the
// setting, leaving config-file defaults in place for the rest.
func fillSetting(c *cli.Context, s *linkbudget.Setting) error {
	optional := map[string]**float64{
		"eirp":                &s.EirpDbw,
		"tx-power":            &s.TxPowerDbw,
		"tx-dish-size":        &s.TxDishSizeM,
		"tx-dish-gain":        &s.TxDishGainDb,
		"rx-dish-size":        &s.RxDishSizeM,
		"rx-dish-gain":        &s.RxDishGainDb,
		"lnb-noise-fig":       &s.LnbNoiseFigDb,
		"lnb-noise-temp":      &s.LnbNoiseTempK,
		"radar-alt":           &s.RadarAltM,
		"radar-cross-section": &s.RadarCrossSecM2,
	}
	for name, field := range optional {
		if c.IsSet(name) {
			*field = linkbudget.Float(c.Float64(name))
		}
	}

	required := map[string]*float64{
		"freq":               &s.FreqHz,
		"if-bw":              &s.IfBwHz,
		"antenna-noise-temp": &s.AntennaNoiseTempK,
		"lnb-gain":           &s.LnbGainDb,
		"coax-length":        &s.CoaxLengthFt,
		"rx-noise-fig":       &s.RxNoiseFigDb,
		"sat-long":           &s.SatLongDeg,
		"rx-long":            &s.RxLongDeg,
		"rx-lat":             &s.RxLatDeg,
	}
	for name, field := range required {
		if c.IsSet(name) {
			*field = c.Float64(name)
		}
	}

	if c.Bool("radar") {
		s.Radar = true
	}
	if c.Bool("radar-bistatic") {
		s.RadarBistatic = true
	}

	if c.IsSet("model") {
		model, err := pointing.ModelFromString(c.String("model"))
		if err != nil {
			return err
		}
		s.Model = model
	}
	return nil
}
