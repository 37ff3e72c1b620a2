// Command pawmatch manages a registry of adoption centers and adopters,
// scores adopters against centers, and records adoptions.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/adoptaverse/pawmatch/internal/discovery"
	"github.com/adoptaverse/pawmatch/internal/ledger"
	"github.com/adoptaverse/pawmatch/internal/match"
	"github.com/adoptaverse/pawmatch/internal/render"
	"github.com/adoptaverse/pawmatch/internal/storage"
)

var (
	registryPath string
)

const Version = "v0.1.0"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "pawmatch",
		Short: "PawMatch - match adopters with adoption centers",
		Run: func(cmd *cobra.Command, args []string) {
			// If version flag is set, print version and exit
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Println(Version)
				return
			}
			// Otherwise show help
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&registryPath, "registry", "", "Path to registry file")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(centersCmd)
	rootCmd.AddCommand(adoptersCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(advertiseCmd)
	rootCmd.AddCommand(adoptCmd)
	rootCmd.AddCommand(historyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter registry in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		path, err := storage.Init(wd)
		if err != nil {
			return err
		}

		fmt.Printf("Registry created at %s\n", path)
		return nil
	},
}

var centersCmd = &cobra.Command{
	Use:   "centers",
	Short: "List the adoption centers in the registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := loadRegistry()
		if err != nil {
			return err
		}

		centers, err := reg.BuildCenters()
		if err != nil {
			return err
		}

		if len(centers) == 0 {
			fmt.Println("No centers registered.")
			return nil
		}
		for _, c := range centers {
			fmt.Println(render.CenterSummary(c))
		}
		return nil
	},
}

var adoptersCmd = &cobra.Command{
	Use:   "adopters",
	Short: "List the adopters in the registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := loadRegistry()
		if err != nil {
			return err
		}

		if len(reg.Adopters) == 0 {
			fmt.Println("No adopters registered.")
			return nil
		}
		for _, rec := range reg.Adopters {
			fmt.Printf("%-20s %-10s wants %s\n", rec.Name, rec.Kind, rec.Desired)
		}
		return nil
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score [adopter] [center]",
	Short: "Score one adopter against one center",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := loadRegistry()
		if err != nil {
			return err
		}

		adopterRec, ok := reg.FindAdopter(args[0])
		if !ok {
			return fmt.Errorf("no adopter named %q in the registry", args[0])
		}
		centerRec, ok := reg.FindCenter(args[1])
		if !ok {
			return fmt.Errorf("no center named %q in the registry", args[1])
		}

		a, err := adopterRec.Build(nil)
		if err != nil {
			return err
		}
		c, err := centerRec.Build()
		if err != nil {
			return err
		}

		fmt.Printf("%s scores %s at %s\n", a.Name(), render.FormatScore(a.Score(c)), c.Name)
		return nil
	},
}

var rankCmd = &cobra.Command{
	Use:   "rank [adopter]",
	Short: "Rank every center for an adopter, best first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := loadRegistry()
		if err != nil {
			return err
		}

		adopterRec, ok := reg.FindAdopter(args[0])
		if !ok {
			return fmt.Errorf("no adopter named %q in the registry", args[0])
		}
		a, err := adopterRec.Build(nil)
		if err != nil {
			return err
		}

		centers, err := reg.BuildCenters()
		if err != nil {
			return err
		}

		fmt.Printf("Centers for %s:\n", a.Name())
		fmt.Print(render.RankingTable(match.RankCenters(a, centers)))
		return nil
	},
}

var advertiseCmd = &cobra.Command{
	Use:   "advertise [center]",
	Short: "Show the top adopters to advertise a center to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("top")
		if err != nil {
			return err
		}

		_, reg, err := loadRegistry()
		if err != nil {
			return err
		}

		centerRec, ok := reg.FindCenter(args[0])
		if !ok {
			return fmt.Errorf("no center named %q in the registry", args[0])
		}
		c, err := centerRec.Build()
		if err != nil {
			return err
		}

		adopters, err := reg.BuildAdopters(nil)
		if err != nil {
			return err
		}

		ranked, err := match.TopAdopters(c, adopters, n)
		if err != nil {
			return err
		}

		fmt.Printf("Top adopters for %s:\n", c.Name)
		fmt.Print(render.RankingTable(ranked))
		return nil
	},
}

var adoptCmd = &cobra.Command{
	Use:   "adopt [center] [species] [adopter]",
	Short: "Adopt one animal from a center, updating registry and ledger",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		regPath, reg, err := loadRegistry()
		if err != nil {
			return err
		}

		centerRec, ok := reg.FindCenter(args[0])
		if !ok {
			return fmt.Errorf("no center named %q in the registry", args[0])
		}
		species := args[1]

		record := ledger.Adoption{
			CenterID:   centerRec.ID,
			CenterName: centerRec.Name,
			Species:    species,
		}
		if len(args) == 3 {
			adopterRec, ok := reg.FindAdopter(args[2])
			if !ok {
				return fmt.Errorf("no adopter named %q in the registry", args[2])
			}
			record.AdopterID = adopterRec.ID
			record.AdopterName = adopterRec.Name
		}

		c, err := centerRec.Build()
		if err != nil {
			return err
		}
		if err := c.Adopt(species); err != nil {
			return err
		}

		// Persist the decrement, then the ledger row.
		centerRec.Inventory = c.Inventory
		if err := storage.Save(regPath, reg); err != nil {
			return err
		}

		db, err := ledger.Open(discovery.LedgerPath(regPath))
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Record(record); err != nil {
			return err
		}

		if record.AdopterName != "" {
			fmt.Printf("%s adopted a %s from %s. %d left.\n", record.AdopterName, species, c.Name, c.SpeciesCount(species))
		} else {
			fmt.Printf("Adopted a %s from %s. %d left.\n", species, c.Name, c.SpeciesCount(species))
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent adoptions from the ledger",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("top")
		if err != nil {
			return err
		}

		regPath, err := resolveRegistryPath()
		if err != nil {
			return err
		}

		db, err := ledger.Open(discovery.LedgerPath(regPath))
		if err != nil {
			return err
		}
		defer db.Close()

		rows, err := db.Recent(n)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No adoptions recorded yet.")
			return nil
		}

		for _, row := range rows {
			who := row.AdopterName
			if who == "" {
				who = "a walk-in"
			}
			fmt.Printf("%-12s %s adopted a %s from %s\n",
				humanize.Time(row.Time()), who, row.Species, row.CenterName)
		}
		return nil
	},
}

func init() {
	advertiseCmd.Flags().IntP("top", "n", 3, "How many adopters to list")
	historyCmd.Flags().IntP("top", "n", 10, "How many adoptions to list")
}

// resolveRegistryPath prefers the --registry flag, then walks up from
// the working directory, then falls back to the per-user registry.
func resolveRegistryPath() (string, error) {
	if registryPath != "" {
		return registryPath, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	path, found, err := discovery.FindRegistry(wd)
	if err != nil {
		return "", err
	}
	if found {
		return path, nil
	}

	global := discovery.GlobalRegistryPath()
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}

	return "", fmt.Errorf("no registry found; run 'pawmatch init' first")
}

func loadRegistry() (string, *storage.Registry, error) {
	path, err := resolveRegistryPath()
	if err != nil {
		return "", nil, err
	}

	reg, err := storage.Load(path)
	if err != nil {
		return "", nil, err
	}
	return path, reg, nil
}
