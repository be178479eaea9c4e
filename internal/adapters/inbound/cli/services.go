package cli

import (
	"github.com/qwickapps/tsfix/internal/adapters/outbound/config"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/detector"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/gitinfo"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/history"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/lint"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/scanner"
	"github.com/qwickapps/tsfix/internal/application"
)

func newRewriteService() *application.RewriteService {
	return application.NewRewriteService(
		scanner.New(),
		config.New(),
		detector.New(),
		gitinfo.New(),
		history.New(),
	)
}

func newLintFixService() *application.LintFixService {
	return application.NewLintFixService(
		config.New(),
		lint.NewRunner(),
		lint.NewParser(),
	)
}
