package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/export"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/questionbank"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/questionnaire"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/report"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/session"
	"github.com/kevinvandever/reservoir-mvp-sub000/pkg/anthropic"
	"github.com/kevinvandever/reservoir-mvp-sub000/pkg/notion"
	"github.com/kevinvandever/reservoir-mvp-sub000/pkg/reservoir"
	"github.com/kevinvandever/reservoir-mvp-sub000/pkg/salesforce"
)

// env holds the wired application components shared by the commands.
type env struct {
	Store     session.Store
	Bank      *model.QuestionBank
	Service   *questionnaire.Service
	Generator *report.Generator
}

func (e *env) Close() {
	if err := e.Store.Close(); err != nil {
		zap.L().Warn("close store", zap.Error(err))
	}
}

// initEnv builds the session store, question bank, questionnaire service,
// and report generator from loaded config.
func initEnv(ctx context.Context) (*env, error) {
	bank, err := loadBank()
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx)
	if err != nil {
		return nil, err
	}

	var ai anthropic.Client
	if cfg.Anthropic.Key != "" {
		ai = anthropic.NewClient(cfg.Anthropic.Key, anthropic.WithRateLimit(cfg.Anthropic.RateRPS))
	}

	var recs reservoir.Client
	if cfg.Reservoir.BaseURL != "" {
		recs = reservoir.NewClient(cfg.Reservoir.BaseURL, cfg.Reservoir.Key)
	}

	svc := questionnaire.New(store, bank, ai, questionnaire.AIConfig{
		Model:     cfg.Anthropic.Model,
		MaxTokens: cfg.Anthropic.MaxTokens,
	})

	return &env{
		Store:     store,
		Bank:      bank,
		Service:   svc,
		Generator: report.NewGenerator(recs),
	}, nil
}

func loadBank() (*model.QuestionBank, error) {
	if cfg.Questionnaire.BankPath != "" {
		return questionbank.LoadYAML(cfg.Questionnaire.BankPath)
	}
	return questionbank.Bank(), nil
}

func openStore(ctx context.Context) (session.Store, error) {
	switch cfg.Store.Driver {
	case "", "memory":
		return session.NewMemory(), nil
	case "sqlite":
		s, err := session.NewSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := s.Migrate(ctx); err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := session.NewPostgres(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := s.Migrate(ctx); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// buildExporter wires the named lead-export destination from config.
func buildExporter(name string) (export.Exporter, error) {
	switch name {
	case "notion":
		if cfg.Export.Notion.Token == "" {
			return nil, eris.New("notion export requires export.notion.token")
		}
		client := notion.NewClient(cfg.Export.Notion.Token)
		return export.NewNotionExporter(client, cfg.Export.Notion.LeadDB), nil
	case "salesforce":
		sf := cfg.Export.Salesforce
		if sf.ClientID == "" || sf.Username == "" || sf.KeyPath == "" {
			return nil, eris.New("salesforce export requires client_id, username, and key_path")
		}
		client, err := salesforce.Connect(sf.LoginURL, sf.ClientID, sf.Username, sf.KeyPath)
		if err != nil {
			return nil, err
		}
		return export.NewSalesforceExporter(client), nil
	default:
		return nil, eris.Errorf("unknown export destination %q", name)
	}
}
