package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/capitolhq/congressctl/internal/congress"
	"github.com/capitolhq/congressctl/internal/factories"
	"github.com/spf13/cobra"
)

type queryFlags struct {
	limit  int
	offset int
	sort   string
	from   string
	to     string
	all    bool
	pretty bool
}

func newResourceCmd(locator *factories.SharedServicesLocator, resource congress.Resource) *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [path...]", resource),
		Short: fmt.Sprintf("Query the '/%s/...' endpoints", resource),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := locator.NewCongressClient()
			if err != nil {
				return fmt.Errorf("creating congress client: %w", err)
			}

			params, err := flags.queryParams(cmd, locator)
			if err != nil {
				return err
			}

			path := strings.Join(args, "/")
			ctx := cmd.Context()

			if flags.all {
				return client.Walk(ctx, resource, path, params, func(page json.RawMessage, _ *congress.Pagination) (bool, error) {
					return true, printPayload(cmd.OutOrStdout(), page, flags.pretty)
				})
			}

			payload, err := client.Get(ctx, resource, path, params)
			if err != nil {
				return fmt.Errorf("querying /%s: %w", resource, err)
			}

			return printPayload(cmd.OutOrStdout(), payload, flags.pretty)
		},
	}

	cmd.Flags().IntVar(&flags.limit, "limit", 25, "Page size")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "Start offset")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "Sort order, e.g. 'updateDate+desc'")
	cmd.Flags().StringVar(&flags.from, "from", "", "Search window start; accepts time expressions like '{{ time.now | minus(30d) }}'")
	cmd.Flags().StringVar(&flags.to, "to", "", "Search window end; accepts time expressions")
	cmd.Flags().BoolVar(&flags.all, "all", false, "Follow pagination and print every page")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Indent the JSON output")

	return cmd
}

// queryParams translates only the flags the user actually changed, so the
// client's own defaults stay in charge otherwise.
func (f *queryFlags) queryParams(cmd *cobra.Command, locator *factories.SharedServicesLocator) (congress.QueryParams, error) {
	params := congress.QueryParams{}

	if cmd.Flags().Changed("limit") {
		params["limit"] = strconv.Itoa(f.limit)
	}
	if cmd.Flags().Changed("offset") {
		params["offset"] = strconv.Itoa(f.offset)
	}
	if f.sort != "" {
		params["sort"] = f.sort
	}

	if f.from != "" {
		from, err := locator.PlaceholdersService.ResolvePlaceholders(f.from)
		if err != nil {
			return nil, fmt.Errorf("resolving --from: %w", err)
		}
		params["fromDateTime"] = from
	}
	if f.to != "" {
		to, err := locator.PlaceholdersService.ResolvePlaceholders(f.to)
		if err != nil {
			return nil, fmt.Errorf("resolving --to: %w", err)
		}
		params["toDateTime"] = to
	}

	return params, nil
}
