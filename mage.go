//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput     = "gen"
	jetSchemaFile = "jet.sqlite"
	serverBin     = "./bin/server"
	certgenBin    = "./bin/certgen"
)

const (
	jetTool     = "github.com/go-jet/jet/v2/cmd/jet@v2.9.0"
	migrateTool = "github.com/golang-migrate/migrate/v4/cmd/migrate@v4.15.2"
	lintTool    = "github.com/golangci/golangci-lint/cmd/golangci-lint@v1.52.2"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the server and certgen binaries
func Build() error {
	mg.Deps(goModDownload)
	if err := sh.Run("go", "build", "-o", serverBin, "./cmd"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", certgenBin, "./cmd/certgen")
}

// Run starts the server with configs/
func Run() error {
	mg.Deps(Build)
	return sh.RunV(serverBin, "-server-config", "configs/server.toml", "-bot-config", "configs/bot.toml")
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// E2E runs the browser suite against a fresh build
func E2E() error {
	mg.Deps(Build)
	return sh.RunV("go", "test", "-v", "-tags", "e2e", "./internal/e2e/...", "-args", "-binary", "../../bin/server")
}

// GenJet regenerates gen/ from the migrations
func GenJet() error {
	_ = os.Remove(jetSchemaFile)
	defer os.Remove(jetSchemaFile)
	err := sh.RunWith(map[string]string{"CGO_ENABLED": "1"},
		"go", "run", "-tags", "sqlite3", migrateTool,
		"-path", "migrations", "-database", "sqlite3://"+jetSchemaFile, "up")
	if err != nil {
		return err
	}
	return sh.RunWith(map[string]string{"CGO_ENABLED": "1"},
		"go", "run", jetTool, "-source", "sqlite", "-dsn", jetSchemaFile, "-path", jetOutput,
		"-ignore-tables", "schema_migrations")
}

func Lint() error {
	return sh.RunV("go", "run", lintTool, "run", "./...")
}
