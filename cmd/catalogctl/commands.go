// cmd/catalogctl/commands.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/javajoker/shopsmart-backend/internal/catalog"
	"github.com/javajoker/shopsmart-backend/internal/config"
	"github.com/javajoker/shopsmart-backend/internal/models"
	"github.com/javajoker/shopsmart-backend/internal/router"
	"github.com/javajoker/shopsmart-backend/internal/services"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

type globalOptions struct {
	source   string
	output   string
	logLevel string
}

type filterOptions struct {
	query     string
	category  string
	minPrice  float64
	maxPrice  float64
	minRating float64
	sort      string
}

func (o filterOptions) FilterState() models.FilterState {
	return models.FilterState{
		SearchQuery: strings.ToLower(strings.TrimSpace(o.query)),
		Category:    o.category,
		MinPrice:    o.minPrice,
		MaxPrice:    o.maxPrice,
		MinRating:   o.minRating,
		SortBy:      models.SortBy(o.sort),
	}
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Query a ShopSmart product catalog offline",
		Long: `catalogctl loads a product catalog from a file, URL or S3 object and runs
the storefront's filter, sort, recommendation and keyword logic against it.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.ConfigureLogger(config.LogConfig{Level: opts.logLevel, Format: "text"})
			logrus.SetOutput(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.source, "source", "s", "", "Catalog location (path, file://, http(s)://, s3://); defaults to CATALOG_SOURCE")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "json", "Output format (json, yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		searchCmd(opts),
		recommendCmd(opts),
		keywordsCmd(opts),
		categoriesCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, router.Version)
			},
		},
	)

	return cmd
}

func addFilterFlags(cmd *cobra.Command, f *filterOptions) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Search text matched against title, description and category")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "Exact category")
	cmd.Flags().Float64Var(&f.minPrice, "min-price", models.DefaultMinPrice, "Minimum price")
	cmd.Flags().Float64Var(&f.maxPrice, "max-price", models.DefaultMaxPrice, "Maximum price")
	cmd.Flags().Float64Var(&f.minRating, "min-rating", 0, "Minimum rating (0 disables)")
	cmd.Flags().StringVar(&f.sort, "sort", string(models.SortRelevance), "Sort key (relevance, price-low, price-high, rating, newest, popularity)")
}

func searchCmd(opts *globalOptions) *cobra.Command {
	var (
		filters  filterOptions
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter, sort and page the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}
			state, err := validFilters(filters)
			if err != nil {
				return err
			}

			result, err := svc.Query(state, page, pageSize)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, result)
		},
	}

	addFilterFlags(cmd, &filters)
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number; pages are cumulative")
	cmd.Flags().IntVar(&pageSize, "page-size", catalog.DefaultPageSize, "Products per page")
	return cmd
}

func recommendCmd(opts *globalOptions) *cobra.Command {
	var (
		filters  filterOptions
		limit    int
		cart     []int
		wishlist []int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend products not already in the cart or wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}
			state, err := validFilters(filters)
			if err != nil {
				return err
			}

			recommendations, err := svc.Recommend(state, idSet(cart), idSet(wishlist), limit)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, recommendations)
		},
	}

	addFilterFlags(cmd, &filters)
	cmd.Flags().IntVarP(&limit, "limit", "n", catalog.DefaultRecommendLimit, "Maximum recommendations")
	cmd.Flags().IntSliceVar(&cart, "cart", nil, "Product ids in the cart")
	cmd.Flags().IntSliceVar(&wishlist, "wishlist", nil, "Product ids in the wishlist")
	return cmd
}

func keywordsCmd(opts *globalOptions) *cobra.Command {
	var match bool

	cmd := &cobra.Command{
		Use:   "keywords <query>",
		Short: "Expand a query with synonyms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if !match {
				return render(cmd.OutOrStdout(), opts.output, catalog.ExtractQueryKeywords(query))
			}

			svc, err := loadCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}
			result, err := svc.EnhancedSearch(query)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, result)
		},
	}

	cmd.Flags().BoolVarP(&match, "match", "m", false, "Also list catalog products matching the keywords")
	return cmd
}

func categoriesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories in first-seen order",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}
			categories, err := svc.Categories()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, categories)
		},
	}
}

func loadCatalog(ctx context.Context, opts *globalOptions) (*services.CatalogService, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.source != "" {
		cfg.Catalog.Source = opts.source
	}

	source, err := services.NewCatalogSource(cfg)
	if err != nil {
		return nil, err
	}

	svc := services.NewCatalogService(source, cfg.Catalog)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Catalog.LoadTimeout)*time.Second)
	defer cancel()
	if _, err := svc.Load(ctx); err != nil {
		return nil, err
	}

	logrus.WithField("source", source.Describe()).Debug("Catalog ready")
	return svc, nil
}

func validFilters(f filterOptions) (models.FilterState, error) {
	state := f.FilterState()
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&state)); len(validationErrors) > 0 {
		messages := make([]string, len(validationErrors))
		for i, e := range validationErrors {
			messages[i] = e.Message
		}
		return state, fmt.Errorf("invalid filters: %s", strings.Join(messages, "; "))
	}
	return state, nil
}

func idSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// render writes v as indented JSON or as YAML. YAML goes through the JSON
// form so both outputs share field names.
func render(w io.Writer, format string, v interface{}) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case "yaml", "yml":
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic interface{}
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(generic)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
