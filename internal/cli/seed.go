package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/catalog"
	"github.com/mrlokans/library/internal/demo"
)

// SeedCommand fills the catalog database with sample authors and books.
type SeedCommand struct {
	DatabasePath string
	Force        bool

	out io.Writer
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{out: os.Stdout}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", defaultDatabasePath(), "Path to the catalog database file")
	fs.BoolVar(&cmd.Force, "force", false, "Insert the sample data even if the catalog is not empty")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert a small sample catalog of public-domain and classic books.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := demo.Seed(catalog.NewRepository(db.DB), cmd.Force)
	if errors.Is(err, demo.ErrCatalogNotEmpty) {
		return fmt.Errorf("%w (use -force to seed anyway)", err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Seeded %d authors and %d books into %s\n", result.Authors, result.Books, cmd.DatabasePath)
	return nil
}

// defaultDatabasePath honours DATABASE_PATH like the server does.
func defaultDatabasePath() string {
	if path := config.NewConfig().Database.Path; path != "" {
		return path
	}
	return config.DefaultDatabasePath
}
