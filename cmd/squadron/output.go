package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/solver-squadron/internal/models"
	"github.com/napolitain/solver-squadron/internal/solver/squadron"
)

func printBanner() {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Println("\n╭───────────────────────────╮")
	titleColor.Println("│  Squadron Mission Solver  │")
	titleColor.Println("╰───────────────────────────╯")
	fmt.Println()
}

func printSquadron(state *models.SquadronState) {
	infoColor := color.New(color.FgYellow)
	infoColor.Println("👥 Squadron:")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Name", "Level", "Class", "Race", "Physical", "Mental", "Tactical"}),
	)
	for _, m := range state.Members {
		class := ""
		if m.ClassJob != 0 {
			class = models.ClassJobName(m.ClassJob)
		}
		race := ""
		if m.Race != models.RaceUnknown {
			race = m.Race.String()
		}
		_ = table.Append([]string{
			m.Name,
			fmt.Sprintf("%d", m.Level),
			class,
			race,
			fmt.Sprintf("%d", m.Physical),
			fmt.Sprintf("%d", m.Mental),
			fmt.Sprintf("%d", m.Tactical),
		})
	}
	_ = table.Render()

	fmt.Printf("   Bonus: %v\n\n", state.Bonus)
}

// renderResultCard draws the suggested roster in a bordered box
func renderResultCard(r *squadron.CalculationResult) string {
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("BEST · %s · estimated %d%%", r.Label(), r.EstimatedSuccessRate()))

	lines := []string{
		"Members:   " + strings.Join(models.MemberNames(r.Members), ", "),
		fmt.Sprintf("Totals:    %v (needs %v)", r.Totals(), r.Thresholds),
		fmt.Sprintf("Matching:  %d of 3", r.MatchingAttributes),
		fmt.Sprintf("Bonus:     %v", r.Bonus),
	}
	if r.NeedsTraining() {
		lines = append(lines, "Trainings: "+strings.Join(models.TrainingNames(r.Trainings), " → "))
	} else {
		lines = append(lines, "Trainings: none")
	}

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

func printResults(results []*squadron.CalculationResult) {
	fmt.Println("📋 Matching rosters:")
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Members", "Physical", "Mental", "Tactical", "Bonus", "Trainings", "Chance"}),
	)
	for i, r := range results {
		trainings := "-"
		if r.NeedsTraining() {
			trainings = strings.Join(models.TrainingNames(r.Trainings), ", ")
		}
		_ = table.Append([]string{
			fmt.Sprintf("%d", i+1),
			strings.Join(models.MemberNames(r.Members), ", "),
			fmt.Sprintf("%d", r.Physical),
			fmt.Sprintf("%d", r.Mental),
			fmt.Sprintf("%d", r.Tactical),
			r.Bonus.Attributes().String(),
			trainings,
			r.Label(),
		})
	}
	_ = table.Render()
}

func printTrainings(trainings []models.Training) {
	fmt.Println("📋 Training catalog:")
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Row", "Name", "Gains", "Gains (saturated)"}),
	)
	for _, t := range trainings {
		_ = table.Append([]string{
			fmt.Sprintf("%d", t.RowID),
			t.Name,
			signed(t.Gains()),
			signed(t.CappedGains()),
		})
	}
	_ = table.Render()
}

func printBonusStates(states []models.BonusAttributes) {
	fmt.Printf("📋 %d alternative bonus states:\n", len(states))
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Physical", "Mental", "Tactical"}),
	)
	for _, b := range states {
		_ = table.Append([]string{
			fmt.Sprintf("%d", b.Physical),
			fmt.Sprintf("%d", b.Mental),
			fmt.Sprintf("%d", b.Tactical),
		})
	}
	_ = table.Render()
}

func printPath(start models.BonusAttributes, trainings []models.Training) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Step", "Training", "Bonus after"}),
	)
	state := start
	for i, t := range trainings {
		state = state.ApplyTraining(t)
		_ = table.Append([]string{
			fmt.Sprintf("%d", i+1),
			t.Name,
			state.String(),
		})
	}
	_ = table.Render()
}

type missionSummary struct {
	Mission    *models.Mission
	Thresholds models.Attributes
	Rosters    int
	Best       *squadron.CalculationResult
}

func summarize(mission *models.Mission, thresholds models.Attributes, results *squadron.CalculationResults) missionSummary {
	s := missionSummary{Mission: mission, Thresholds: thresholds, Rosters: len(results.Results)}
	if best, err := results.Best(); err == nil {
		s.Best = best
	}
	return s
}

func printMissionSummaries(summaries []missionSummary) {
	fmt.Println("📋 Missions:")
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"ID", "Mission", "Level", "Requires", "Rosters", "Best", "Members"}),
	)
	for _, s := range summaries {
		best, members := "-", "-"
		if s.Best != nil {
			best = s.Best.Label()
			members = strings.Join(models.MemberNames(s.Best.Members), ", ")
		}
		name := s.Mission.Name
		if s.Mission.IsFlaggedMission {
			name += " ⚑"
		}
		_ = table.Append([]string{
			fmt.Sprintf("%d", s.Mission.ID),
			name,
			fmt.Sprintf("%d", s.Mission.Level),
			s.Thresholds.String(),
			fmt.Sprintf("%d", s.Rosters),
			best,
			members,
		})
	}
	_ = table.Render()
}

func signed(a models.Attributes) string {
	return fmt.Sprintf("%+d / %+d / %+d", a.Physical, a.Mental, a.Tactical)
}
