// Prints the transfer duty each region charges across a sweep of prices.
// Debugging aid for eyeballing bracket joins; not part of the CLI.
package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stampcalc/stampcalc/internal/calculation"
	"github.com/stampcalc/stampcalc/internal/domain"
)

func main() {
	calc := calculation.NewDutyCalculator()

	prices := []int64{
		10_000, 50_000, 100_000, 200_000, 300_000, 400_000, 500_000,
		525_000, 600_000, 750_000, 1_000_000, 1_500_000, 2_000_000, 3_000_000,
	}

	fmt.Printf("%-12s", "price")
	for _, r := range domain.AllRegions() {
		fmt.Printf("%14s", r)
	}
	fmt.Println()

	for _, p := range prices {
		fmt.Printf("%-12d", p)
		for _, r := range domain.AllRegions() {
			duty, err := calc.Calculate(decimal.NewFromInt(p), r)
			if err != nil {
				fmt.Printf("%14s", "err")
				continue
			}
			fmt.Printf("%14s", duty.StringFixed(2))
		}
		fmt.Println()
	}
}
