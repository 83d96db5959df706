package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-squadron/internal/loader"
	"github.com/napolitain/solver-squadron/internal/models"
	"github.com/napolitain/solver-squadron/internal/solver/squadron"
)

var (
	dataDir      string
	squadronFile string
	missionID    int
	variant      int
	showAll      bool
	verbose      bool
	quiet        bool
	target       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "squadron",
		Short: "Squadron Mission Solver",
		Long: `Picks the four squadron members to send on a mission and, when
the current bonus is not enough, the shortest training regimen that gets
the squadron there.`,
	}

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "data", "Path to data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log solver progress to stderr")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the best roster for a mission",
		Run:   runSolve,
	}
	solveCmd.Flags().StringVarP(&squadronFile, "squadron", "s", "", "Path to squadron YAML file")
	solveCmd.Flags().IntVarP(&missionID, "mission", "m", 0, "Mission id")
	solveCmd.Flags().IntVar(&variant, "variant", 0, "Index of the mission's attribute requirement")
	solveCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show every matching roster")
	_ = solveCmd.MarkFlagRequired("squadron")
	_ = solveCmd.MarkFlagRequired("mission")

	missionsCmd := &cobra.Command{
		Use:   "missions",
		Short: "Solve every mission the squadron can take",
		Run:   runMissions,
	}
	missionsCmd.Flags().StringVarP(&squadronFile, "squadron", "s", "", "Path to squadron YAML file")
	_ = missionsCmd.MarkFlagRequired("squadron")

	trainingsCmd := &cobra.Command{
		Use:   "trainings",
		Short: "List the training catalog",
		Run:   runTrainings,
	}

	bonusCmd := &cobra.Command{
		Use:   "bonus",
		Short: "List the bonus states the squadron could train into",
		Run:   runBonus,
	}
	bonusCmd.Flags().StringVarP(&squadronFile, "squadron", "s", "", "Path to squadron YAML file")
	_ = bonusCmd.MarkFlagRequired("squadron")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show the shortest training regimen to a bonus state",
		Run:   runPath,
	}
	pathCmd.Flags().StringVarP(&squadronFile, "squadron", "s", "", "Path to squadron YAML file")
	pathCmd.Flags().StringVarP(&target, "to", "t", "", "Target bonus as physical/mental/tactical[/cap]")
	_ = pathCmd.MarkFlagRequired("squadron")
	_ = pathCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(solveCmd, missionsCmd, trainingsCmd, bonusCmd, pathCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) {
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		printBanner()
	}

	data := mustLoadData()
	state := mustLoadSquadron()

	mission, err := loader.FindMission(data.Missions, missionID)
	if err != nil {
		fail("Error: %v", err)
	}
	if variant < 0 || variant >= len(mission.PossibleAttributes) {
		fail("Error: mission %d has %d attribute requirements, no variant %d",
			mission.ID, len(mission.PossibleAttributes), variant)
	}
	thresholds := mission.PossibleAttributes[variant]

	if !quiet {
		printSquadron(state)
		infoColor.Printf("🎯 %s (level %d): %v", mission.Name, mission.Level, thresholds)
		if mission.IsFlaggedMission {
			infoColor.Print(", all three attributes required")
		}
		fmt.Println()
		fmt.Println()
		infoColor.Println("🔄 Solving...")
	}

	solver := squadron.NewSolver(*state, data.Trainings, squadron.WithLogger(solverLogger()))
	results := solver.Calculate(mission, thresholds)

	if len(results.Results) == 0 {
		color.Red("✗ No roster can take %s, even after training", mission.Name)
		os.Exit(1)
	}

	best, err := results.Best()
	if err != nil {
		color.Yellow("⚠ %d rosters qualify but all need more than %d trainings",
			len(results.Results), squadron.MaxSuggestedTrainings)
	} else {
		successColor.Printf("\n✓ Found %d matching rosters\n\n", len(results.Results))
		fmt.Println(renderResultCard(best))
	}

	if showAll || best == nil {
		fmt.Println()
		printResults(results.Results)
	}
}

func runMissions(cmd *cobra.Command, args []string) {
	if !quiet {
		printBanner()
	}

	data := mustLoadData()
	state := mustLoadSquadron()

	level := 0
	for _, m := range state.Members {
		level = max(level, m.Level)
	}
	missions := loader.GetMissionsForLevel(data.Missions, level)
	if len(missions) == 0 {
		fail("Error: no mission available at level %d", level)
	}

	cache := squadron.NewCache(*state, data.Trainings, squadron.WithLogger(solverLogger()))
	ctx := context.Background()

	summaries := make([]missionSummary, 0, len(missions))
	for _, mission := range missions {
		thresholds, ok := mission.DefaultAttributes()
		if !ok {
			continue
		}
		results, err := cache.Calculate(ctx, mission, thresholds)
		if err != nil {
			fail("Error solving %s: %v", mission.Name, err)
		}
		summaries = append(summaries, summarize(mission, thresholds, results))
	}

	printMissionSummaries(summaries)
}

func runTrainings(cmd *cobra.Command, args []string) {
	data := mustLoadData()
	printTrainings(data.Trainings)
}

func runBonus(cmd *cobra.Command, args []string) {
	state := mustLoadSquadron()

	candidates := squadron.CandidateBonusStates(state.Bonus)
	if !quiet {
		color.New(color.FgYellow).Printf("📊 Current bonus: %v\n\n", state.Bonus)
	}
	if len(candidates) == 0 {
		color.Yellow("⚠ No other bonus distribution under cap %d", state.Bonus.Cap)
		return
	}
	printBonusStates(candidates)
}

func runPath(cmd *cobra.Command, args []string) {
	data := mustLoadData()
	state := mustLoadSquadron()

	to, err := parseBonus(target, state.Bonus.Cap)
	if err != nil {
		fail("Error: %v", err)
	}

	paths := squadron.NewTrainingPaths(state.Bonus, data.Trainings, solverLogger())
	trainings, ok := paths.Find(to)
	if !ok {
		color.Red("✗ %v is not reachable from %v within %d trainings",
			to, state.Bonus, squadron.MaxTrainingRounds)
		os.Exit(1)
	}

	color.New(color.FgGreen, color.Bold).Printf("✓ %d trainings from %v to %v\n\n", len(trainings), state.Bonus, to)
	printPath(state.Bonus, trainings)
}

func mustLoadData() *loader.GameData {
	data, err := loader.Load(dataDir)
	if err != nil {
		fail("Error loading game data: %v", err)
	}
	if !quiet {
		color.New(color.FgYellow).Printf("📦 Loaded %d trainings, %d missions\n\n", len(data.Trainings), len(data.Missions))
	}
	return data
}

func mustLoadSquadron() *models.SquadronState {
	config, err := models.LoadSquadronConfig(squadronFile)
	if err != nil {
		fail("Error loading squadron: %v", err)
	}
	if err := models.ValidateSquadronConfig(config); err != nil {
		fail("Invalid squadron: %v", err)
	}
	return models.SquadronConfigToState(config)
}

func solverLogger() squadron.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "squadron: ", log.Ltime)
}

func fail(format string, args ...any) {
	color.Red(format, args...)
	os.Exit(1)
}

// parseBonus reads "p/m/t" or "p/m/t/cap"; without a cap the current one is kept
func parseBonus(s string, currentCap int) (models.BonusAttributes, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 && len(parts) != 4 {
		return models.BonusAttributes{}, fmt.Errorf("bonus %q: want physical/mental/tactical[/cap]", s)
	}

	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return models.BonusAttributes{}, fmt.Errorf("bonus %q: %w", s, err)
		}
		if v < 0 {
			return models.BonusAttributes{}, fmt.Errorf("bonus %q: negative value %d", s, v)
		}
		values[i] = v
	}

	b := models.BonusAttributes{Physical: values[0], Mental: values[1], Tactical: values[2], Cap: currentCap}
	if len(values) == 4 {
		b.Cap = values[3]
	}
	return b, nil
}
