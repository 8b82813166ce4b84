package cmd

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/lukman83/pricewise/internal/compare"
	"github.com/lukman83/pricewise/internal/models"
)

// printReport prints offers in a human-friendly card layout followed by
// provider status.
func printReport(w io.Writer, r *compare.Report) {
	printProductsTable(w, r.Products)

	fmt.Fprintln(w)
	status := fmt.Sprintf("Providers: %s ok", joinOrDash(r.Succeeded))
	if len(r.Skipped) > 0 {
		status += fmt.Sprintf("  |  skipped: %s", strings.Join(r.Skipped, ", "))
	}
	fmt.Fprintln(w, status)
	for _, f := range r.Failures {
		fmt.Fprintf(w, "  failed %s\n", truncate(f.Error(), 120))
	}
}

func printProductsTable(w io.Writer, products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No trusted offers found.")
		return
	}
	for i, p := range products {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, " %d. %s\n", i+1, truncate(p.Title, 80))

		priceLine := "    Price: " + p.PriceDisplay + "  |  Seller: " + p.Source
		if p.Delivery != "" {
			priceLine += "  |  " + p.Delivery
		}
		fmt.Fprintln(w, priceLine)
		fmt.Fprintf(w, "    %s\n", cleanURL(p.Link))
	}
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// cleanURL strips tracking query params and returns just the offer page URL.
func cleanURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
