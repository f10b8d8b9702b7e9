package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/kunal2217/employee-registration/backend/internal/config"
	"github.com/kunal2217/employee-registration/backend/internal/repository"
	"github.com/kunal2217/employee-registration/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random users, 2: insert random employees)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not touch the database, so ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.Bootstrap(ctx); err != nil {
		logger.Error("unable to bootstrap database schema", "error", err)
		return
	}

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		if n <= 0 {
			slog.Error("please specify a valid number of users")
			return
		}
		cnt := n
		for i := 0; i < n; i++ {
			user := utils.GenerateRandomUser()
			if err := repo.CreateUser(user); err != nil {
				slog.Error("unable to insert random user", slog.String("error", err.Error()))
				cnt--
			}
		}
		slog.Info("random users inserted", "count", cnt)
	case 2:
		if n <= 0 {
			slog.Error("please specify a valid number of employees")
			return
		}
		cnt := n
		for i := 0; i < n; i++ {
			employee := utils.GenerateRandomEmployee()
			if err := repo.CreateEmployee(employee); err != nil {
				slog.Error("unable to insert random employee", slog.String("error", err.Error()))
				cnt--
			}
		}
		slog.Info("random employees inserted", "count", cnt)
	default:
		slog.Error("unknown operation", "op", op)
	}
}
