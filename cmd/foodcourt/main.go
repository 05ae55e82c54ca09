package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wzlim/foodcourt/internal/adapter/config"
	"github.com/wzlim/foodcourt/internal/adapter/handler/console"
	"github.com/wzlim/foodcourt/internal/adapter/logger"
	"github.com/wzlim/foodcourt/internal/adapter/storage/memory"
	"github.com/wzlim/foodcourt/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	store := memory.NewStore()
	if conf.Demo.Seed {
		if err := store.Seed(ctx); err != nil {
			log.Error("seed error", zap.Error(err))
			return
		}
	}

	paymentService, err := service.NewPaymentService(store, log.Named("Payment"))
	if err != nil {
		log.Error("payment service creating error", zap.Error(err))
		return
	}
	orderService, err := service.NewOrderService(store, store, store, paymentService, log.Named("Order"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}
	catalogService, err := service.NewCatalogService(store, log.Named("Catalog"))
	if err != nil {
		log.Error("catalog service creating error", zap.Error(err))
		return
	}
	customerService, err := service.NewCustomerService(store, store, log.Named("Customer"))
	if err != nil {
		log.Error("customer service creating error", zap.Error(err))
		return
	}

	base := console.NewHandler(os.Stdin, os.Stdout, log.Named("Console"))

	orderHandler, err := console.NewOrderHandler(base, orderService, catalogService)
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	foodHandler, err := console.NewFoodHandler(base, catalogService)
	if err != nil {
		log.Error("food handler creating error", zap.Error(err))
		return
	}
	customerHandler, err := console.NewCustomerHandler(base, customerService)
	if err != nil {
		log.Error("customer handler creating error", zap.Error(err))
		return
	}

	menu, err := console.NewMenu(base, orderHandler, foodHandler, customerHandler)
	if err != nil {
		log.Error("menu creating error", zap.Error(err))
		return
	}

	if err := menu.Run(ctx); err != nil {
		log.Error("console loop error", zap.Error(err))
	}
}
