// Command storefront is a terminal client of the storefront API. It drives
// the same feed, cart and checkout flow as a browser session: pages load
// incrementally as you scroll (the "more" command plays the role of the last
// item becoming visible), the cart persists to a local file, and checkout
// clears the cart only when every line was accepted.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/cart"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/client"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/feed"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "storefront server base URL")
	pageSize := flag.Int("page-size", 6, "products per feed page")
	cartFile := flag.String("cart", ".storefront-cart.json", "cart persistence file")
	flag.Parse()

	api := client.New(*addr)
	controller := feed.NewController(api, *pageSize)

	basket, err := cart.NewStore(cart.NewFileStorage(*cartFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load cart: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	categories, err := api.Categories(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to reach server at %s: %v\n", *addr, err)
		os.Exit(1)
	}
	fmt.Printf("categories: all, %s\n", strings.Join(categories, ", "))

	controller.SetFilter(ctx, feed.Filter{Category: "all"})
	printFeed(controller)

	fmt.Println(`commands: more | filter <category> [sortBy] | add <index> | cart | checkout | search <name> | quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "more":
			before := len(controller.Items())
			controller.Advance(ctx)
			if err := controller.Err(); err != nil {
				fmt.Printf("failed to load more products: %v\n", err)
				continue
			}
			if len(controller.Items()) == before && !controller.HasMore() {
				fmt.Println("no more products to show")
				continue
			}
			printFeed(controller)

		case "filter":
			f := feed.Filter{Category: "all"}
			if len(fields) > 1 {
				f.Category = fields[1]
			}
			if len(fields) > 2 {
				f.SortBy = fields[2]
			}
			controller.SetFilter(ctx, f)
			if err := controller.Err(); err != nil {
				fmt.Printf("failed to load products: %v\n", err)
				continue
			}
			printFeed(controller)

		case "add":
			if len(fields) != 2 {
				fmt.Println("usage: add <index>")
				continue
			}
			idx, err := strconv.Atoi(fields[1])
			items := controller.Items()
			if err != nil || idx < 1 || idx > len(items) {
				fmt.Println("no such product in the feed")
				continue
			}
			product := items[idx-1]
			if err := basket.Add(product); err != nil {
				fmt.Printf("could not add %s: %v\n", product.Name, err)
				continue
			}
			fmt.Printf("%s added to cart\n", product.Name)

		case "cart":
			lines := basket.Lines()
			if len(lines) == 0 {
				fmt.Println("the cart is empty")
				continue
			}
			for _, l := range lines {
				fmt.Printf("  %dx %-30s %8.2f\n", l.Quantity, l.Name, l.Price*float64(l.Quantity))
			}
			fmt.Printf("  total: %.2f\n", basket.TotalPrice())

		case "checkout":
			lines := basket.Lines()
			if len(lines) == 0 {
				fmt.Println("the cart is empty")
				continue
			}
			confirmation, lineErrors, err := api.Checkout(ctx, basket.ToOrderRequest())
			if err != nil {
				fmt.Printf("checkout failed: %v\n", err)
				continue
			}
			if len(lineErrors) > 0 {
				// The cart is kept so the user can adjust quantities and retry.
				for _, msg := range lineErrors {
					fmt.Printf("  error: %s\n", msg)
				}
				continue
			}
			if err := basket.Clear(); err != nil {
				fmt.Printf("order %s placed, but clearing the cart failed: %v\n", confirmation.OrderID, err)
				continue
			}
			fmt.Printf("order %s placed: %s\n", confirmation.OrderID, confirmation.Message)

		case "search":
			if len(fields) < 2 {
				fmt.Println("usage: search <name>")
				continue
			}
			product, err := api.Search(ctx, strings.Join(fields[1:], " "))
			if err != nil {
				fmt.Printf("search failed: %v\n", err)
				continue
			}
			if product == nil {
				fmt.Println("no product found")
				continue
			}
			fmt.Printf("%s (%.2f, %d units) - %s\n", product.Name, product.Price, product.Units, product.ShortDescription)

		case "quit", "exit":
			return

		default:
			fmt.Println("unknown command")
		}
	}
}

func printFeed(c *feed.Controller) {
	for i, p := range c.Items() {
		fmt.Printf("%3d. %-30s %8.2f  %-12s %3d units\n", i+1, p.Name, p.Price, p.Category, p.Units)
	}
	if c.HasMore() {
		fmt.Println("  (type 'more' to load the next page)")
	}
}
