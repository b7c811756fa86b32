package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"greensim"
)

var (
	configFile  string
	weatherFile string
	schedFile   string
	lampName    string
	days        float64
	segmentDays float64
	outputStep  float64
	mature      bool
	fourHectare bool
	outputFile  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "greensim",
		Short: "greenhouse climate and tomato crop simulator",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&weatherFile, "weather", "", "weather CSV; empty generates weather")
	runCmd.Flags().StringVar(&schedFile, "schedule", "", "control schedule CSV; empty uses the controller rules")
	runCmd.Flags().StringVar(&lampName, "lamp", "led", "lamp type: hps, led or none")
	runCmd.Flags().Float64Var(&days, "days", 1, "generated-weather span in days")
	runCmd.Flags().Float64Var(&segmentDays, "segment-days", 0, "season segment length in days; 0 runs in one piece")
	runCmd.Flags().Float64Var(&outputStep, "output-step", greensim.OutputStep, "result resolution in seconds")
	runCmd.Flags().BoolVar(&mature, "mature", false, "start from a mature crop")
	runCmd.Flags().BoolVar(&fourHectare, "four-hectare", false, "apply the 4 ha greenhouse configuration")
	runCmd.Flags().StringVar(&outputFile, "output", "", "state trajectory CSV path")

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "greensim.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			return greensim.SaveConfig(path, greensim.DefaultConfig())
		},
	}

	rootCmd.AddCommand(runCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		cfg, err := greensim.LoadConfig(configFile)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("weather") {
			weatherFile = cfg.Weather
		}
		if !cmd.Flags().Changed("schedule") {
			schedFile = cfg.Schedule
		}
		if !cmd.Flags().Changed("lamp") {
			lampName = cfg.Lamp
		}
		if !cmd.Flags().Changed("days") {
			days = cfg.Days
		}
		if !cmd.Flags().Changed("segment-days") {
			segmentDays = cfg.SegmentDays
		}
		if !cmd.Flags().Changed("output-step") {
			outputStep = cfg.OutputStep
		}
		if !cmd.Flags().Changed("mature") {
			mature = cfg.Mature
		}
		if !cmd.Flags().Changed("four-hectare") {
			fourHectare = cfg.FourHectare
		}
		if !cmd.Flags().Changed("output") {
			outputFile = cfg.Output
		}
	}

	lamp, err := greensim.ParseLampType(lampName)
	if err != nil {
		return err
	}
	p := greensim.NewParams(lamp)
	if fourHectare {
		p.ApplyFourHectare()
	}

	var w *greensim.Weather
	if weatherFile != "" {
		var elevation float64
		w, elevation, err = greensim.LoadWeather(weatherFile)
		if err != nil {
			return err
		}
		p.SetElevation(elevation)
		log.Printf("greensim: weather %s, %d samples", weatherFile, len(w.Datenum))
	} else {
		w = greensim.ArtificialWeather(days)
		log.Printf("greensim: generated weather, %.1f days", days)
	}
	dist, err := w.Disturbances()
	if err != nil {
		return err
	}

	var sched *greensim.Schedule
	if schedFile != "" {
		sched, err = greensim.LoadSchedule(schedFile)
		if err != nil {
			return err
		}
		log.Printf("greensim: prescribed controls from %s", schedFile)
	}

	x0 := greensim.NewInitialState(p, dist, w.StartTime(), nil)
	if mature {
		x0.StartMature()
	}

	m, err := greensim.NewModel(p, dist, sched, *x0)
	if err != nil {
		return err
	}
	m.Step = outputStep

	ctx := context.Background()
	var results []*greensim.Result
	if segmentDays > 0 {
		results, err = m.RunSeason(ctx, segmentDays*86400)
	} else {
		var res *greensim.Result
		res, err = m.Run(ctx)
		results = []*greensim.Result{res}
	}
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := greensim.WriteResultsCSV(outputFile, results...); err != nil {
			return err
		}
		log.Printf("greensim: wrote %s", outputFile)
	}

	return printSummary(p, results)
}

// printSummary reports the energy balance and the energy use per yield
// of the final segment, plus overall totals for season runs.
func printSummary(p *greensim.Params, results []*greensim.Result) error {
	var inSum, yieldSum float64
	for i, res := range results {
		eb, err := greensim.NewEnergyBalance(res)
		if err != nil {
			return err
		}
		ey, err := greensim.NewEnergyYield(p, res)
		if err != nil {
			return err
		}
		if len(results) > 1 {
			fmt.Printf("segment %d:\n", i+1)
		}
		fmt.Printf("  sun in      %10.2f MJ m-2\n", eb.SunIn)
		fmt.Printf("  heat in     %10.2f MJ m-2\n", eb.HeatIn)
		fmt.Printf("  lamp in     %10.2f MJ m-2\n", eb.LampIn)
		fmt.Printf("  transp      %10.2f MJ m-2\n", eb.Transp)
		fmt.Printf("  soil out    %10.2f MJ m-2\n", eb.SoilOut)
		fmt.Printf("  vent out    %10.2f MJ m-2\n", eb.VentOut)
		fmt.Printf("  conv out    %10.2f MJ m-2\n", eb.ConvOut)
		fmt.Printf("  fir out     %10.2f MJ m-2\n", eb.FirOut)
		fmt.Printf("  lamp cool   %10.2f MJ m-2\n", eb.LampCool)
		fmt.Printf("  residual    %10.2f MJ m-2\n", eb.Residual)
		fmt.Printf("  yield       %10.3f kg m-2 fresh weight\n", ey.YieldFW)
		if ey.YieldFW > 0 {
			fmt.Printf("  efficiency  %10.2f MJ kg-1\n", ey.Efficiency)
		}
		inSum += ey.LampIn + ey.BoilIn
		yieldSum += ey.YieldFW
	}
	if len(results) > 1 {
		fmt.Printf("season: %.2f MJ m-2 in, %.3f kg m-2 yield", inSum, yieldSum)
		if yieldSum > 0 {
			fmt.Printf(", %.2f MJ kg-1", inSum/yieldSum)
		}
		fmt.Println()
	}
	return nil
}
