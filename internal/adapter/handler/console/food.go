package console

import (
	"context"

	"github.com/wzlim/foodcourt/internal/core/domain"
	"github.com/wzlim/foodcourt/internal/core/port"
)

type FoodHandler struct {
	*Handler
	catalog port.CatalogService
}

func NewFoodHandler(base *Handler, catalog port.CatalogService) (*FoodHandler, error) {
	return &FoodHandler{
		Handler: base,
		catalog: catalog,
	}, nil
}

func (fh *FoodHandler) ListFoods(ctx context.Context) error {
	foods, err := fh.catalog.ListFoods(ctx)
	if err != nil {
		fh.println("Could not load the menu:", err.Error())
		return nil
	}
	if len(foods) == 0 {
		fh.println("The menu is empty.")
		return nil
	}

	fh.printf("%-6s %-30s %10s %-12s\n", "ID", "Name", "Price", "Category")
	for _, f := range foods {
		fh.printf("%-6d %-30s %10s %-12s\n", f.ID, f.Name, f.Price.String(), f.Category)
	}
	return nil
}

func (fh *FoodHandler) AddFood(ctx context.Context) error {
	name, err := fh.promptString("Food name")
	if err != nil {
		return err
	}
	price, err := fh.promptDecimal("Price (RM)")
	if err != nil {
		return err
	}
	category, err := fh.promptString("Category")
	if err != nil {
		return err
	}

	food, err := fh.catalog.AddFood(ctx, &domain.Food{
		Name:     name,
		Price:    price,
		Category: category,
	})
	if err != nil {
		fh.println("Could not add food:", err.Error())
		return nil
	}

	fh.printf("Added food #%d %s.\n", food.ID, food.Name)
	return nil
}

func (fh *FoodHandler) EditFood(ctx context.Context) error {
	id, err := fh.promptUint("Food id")
	if err != nil {
		return err
	}
	food, err := fh.catalog.GetFood(ctx, id)
	if err != nil {
		fh.println("Food not found.")
		return nil
	}

	name, err := fh.promptOptionalString("New name")
	if err != nil {
		return err
	}
	if name != "" {
		food.Name = name
	}

	priceInput, err := fh.promptOptionalString("New price (RM)")
	if err != nil {
		return err
	}
	if priceInput != "" {
		price, perr := parseDecimal(priceInput)
		if perr != nil {
			fh.println("Not a valid price.")
			return nil
		}
		food.Price = price
	}

	if _, err := fh.catalog.UpdateFood(ctx, food); err != nil {
		fh.println("Could not update food:", err.Error())
		return nil
	}
	fh.printf("Updated food #%d.\n", food.ID)
	return nil
}

func (fh *FoodHandler) RemoveFood(ctx context.Context) error {
	id, err := fh.promptUint("Food id")
	if err != nil {
		return err
	}
	if err := fh.catalog.RemoveFood(ctx, id); err != nil {
		fh.println("Could not remove food:", err.Error())
		return nil
	}
	fh.printf("Removed food #%d.\n", id)
	return nil
}
