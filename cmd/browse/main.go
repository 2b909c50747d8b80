package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/matst80/slask-directory/pkg/catalog"
	"github.com/matst80/slask-directory/pkg/directory"
	"github.com/matst80/slask-directory/pkg/types"
)

var baseUrl = flag.String("url", "http://localhost:8080", "directory api base url")
var search = flag.String("search", "", "free text search term")
var category = flag.String("category", "", "category filter")
var pricing = flag.String("pricing", "", "pricing filter")
var listingType = flag.String("listing", "", "listing type filter")
var sortBy = flag.String("sort", "name", "sort key (name, date, rating, category)")
var page = flag.Int("page", 1, "page to show")
var detail = flag.String("detail", "", "show the detail view for one tool id")

func main() {
	flag.Parse()

	hooks := directory.Hooks{
		Grid: func(html string) {
			fmt.Println(html)
		},
		Pagination: func(html string) {
			if html != "" {
				fmt.Println(html)
			}
		},
		ResultsCount: func(count int) {
			fmt.Printf("<!-- %d tools found -->\n", count)
		},
		Stats: func(stats catalog.Stats) {
			fmt.Printf("<!-- %d tools, %d categories, %d free -->\n",
				stats.TotalTools, stats.TotalCategories, stats.FreeTools)
		},
	}

	d := directory.NewDirectory(
		directory.NewLoader(*baseUrl),
		hooks,
		directory.WithDebounce(0),
		directory.WithMinLoading(0),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	d.Load(ctx)

	if *search != "" {
		d.SetQuery(*search)
	}
	if *category != "" {
		d.SetCategory(*category)
	}
	if *pricing != "" {
		d.SetPricing(*pricing)
	}
	if *listingType != "" {
		d.SetListingType(*listingType)
	}
	d.SetSort(types.SortKey(*sortBy))
	if *page > 1 {
		d.GoToPage(*page)
	}

	if *detail != "" {
		html, ok := d.ShowDetail(*detail)
		if !ok {
			log.Fatalf("No tool with id %s", *detail)
		}
		fmt.Println(html)
	}
}
