// Comando reconcile: recalcula o estoque dos produtos a partir do razão de
// movimentações e reporta divergências. Com -fix, grava as correções.
//
// Uso:
//
//	reconcile -all [-fix]
//	reconcile -product <id> [-fix]
package main

import (
	"context"
	"flag"
	"os"

	"github.com/stashkeeper/stashkeeper-api/internal/application/dto"
	"github.com/stashkeeper/stashkeeper-api/internal/application/stock"
	"github.com/stashkeeper/stashkeeper-api/internal/infrastructure/postgres"
	"github.com/stashkeeper/stashkeeper-api/pkg/config"
	"github.com/stashkeeper/stashkeeper-api/pkg/logger"
)

func main() {
	var (
		productID = flag.String("product", "", "ID do produto a recalcular (vazio exige -all)")
		all       = flag.Bool("all", false, "recalcular todos os produtos")
		fix       = flag.Bool("fix", false, "gravar as correções (sem -fix apenas audita)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *productID == "" && !*all {
		log.Error().Msg("informe -product <id> ou -all")
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	recalculateUC := stock.NewRecalculateUseCase(txRunner, productRepo)

	var results []*dto.RecalculateResult
	if *all {
		results, err = recalculateUC.RecalculateAll(ctx, *fix)
	} else {
		var r *dto.RecalculateResult
		r, err = recalculateUC.Recalculate(ctx, *productID, *fix)
		if r != nil {
			results = append(results, r)
		}
	}
	if err != nil {
		log.Fatal().Err(err).Msg("recálculo")
	}

	inconsistent := 0
	for _, r := range results {
		ev := log.Info()
		if !r.Consistent {
			inconsistent++
			ev = log.Warn()
		}
		ev.
			Str("product_id", r.ProductID).
			Str("code", r.Code).
			Str("stored", r.Stored.String()).
			Str("recomputed", r.Recomputed.String()).
			Str("drift", r.Drift.String()).
			Bool("consistent", r.Consistent).
			Bool("fixed", r.Fixed).
			Msg("produto recalculado")
	}

	log.Info().
		Int("total", len(results)).
		Int("inconsistent", inconsistent).
		Bool("fix", *fix).
		Msg("recálculo concluído")

	if inconsistent > 0 && !*fix {
		os.Exit(1)
	}
}
