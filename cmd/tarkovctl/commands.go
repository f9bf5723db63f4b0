package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tarkov_market/internal/domain/service/ammo"
	"tarkov_market/internal/domain/service/craft"
	"tarkov_market/internal/domain/service/dashboard"
	"tarkov_market/internal/domain/service/task"
	"tarkov_market/internal/domain/value"
	"tarkov_market/internal/server"
	"tarkov_market/pkg/rest"
)

//nolint:gochecknoglobals
var (
	calibers = []string{"5.56x45mm NATO", "5.45x39mm", "7.62x39mm", "7.62x51mm NATO", ".300 Blackout", "12/70", "9x19mm Parabellum"}
	traders  = []string{"Prapor", "Therapist", "Fence", "Skier", "Peacekeeper", "Mechanic", "Ragman", "Jaeger"}
	maps     = []string{"Ground Zero", "Streets of Tarkov", "Customs", "Factory", "Woods", "Reserve", "Lighthouse", "Shoreline", "Interchange", "Labs", value.AnyMap}
	stations = []string{"Workbench", "Lavatory", "Medstation", "Nutrition Unit", "Water Collector", "Booze Generator", "Intelligence Center"}
)

const (
	defaultMaxPlayerLevel  = 70
	defaultMaxStationLevel = 3
)

func newAmmoCmd(flags *globalFlags) *cobra.Command {
	var (
		caliber        string
		minPenetration float64
		minDamage      float64
	)

	cmd := &cobra.Command{
		Use:   "ammo",
		Short: "Ammo of one caliber sorted by penetration",
		Long:  "Ammo of one caliber sorted by penetration.\n\nCalibers: " + strings.Join(calibers, ", "),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			panel := s.deps.Dashboard.Ammo(ctx, s.lang, dashboard.AmmoQuery{
				Caliber: caliber,
				Filter:  ammo.Filter{MinPenetration: minPenetration, MinDamage: minDamage},
			})

			return printPanel(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags.json, server.NewRESTPanel(panel, server.NewRESTAmmo), []column[rest.Ammo]{
				{title: "Name", cell: func(r rest.Ammo) string { return r.Name }},
				{title: "Damage", cell: func(r rest.Ammo) string { return number(r.Damage) }},
				{title: "Penetration", cell: func(r rest.Ammo) string { return number(r.PenetrationPower) }},
				{title: "Fragmentation", cell: func(r rest.Ammo) string { return r.DisplayFragmentation }},
				{title: "Price", cell: func(r rest.Ammo) string { return r.DisplayPrice }},
			})
		},
	}

	cmd.Flags().StringVar(&caliber, "caliber", "", "caliber name, e.g. \"5.56x45mm NATO\"")
	cmd.Flags().Float64Var(&minPenetration, "min-penetration", 0, "minimum penetration power")
	cmd.Flags().Float64Var(&minDamage, "min-damage", 0, "minimum damage")
	_ = cmd.MarkFlagRequired("caliber")

	return cmd
}

func newItemsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "items <name>",
		Short: "Flea and trader prices of items matching a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			panel := s.deps.Dashboard.Items(ctx, s.lang, strings.Join(args, " "))

			return printPanel(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags.json, server.NewRESTPanel(panel, server.NewRESTItemPrice), []column[rest.ItemPrice]{
				{title: "Name", cell: func(r rest.ItemPrice) string { return r.Name }},
				{title: "Flea", cell: func(r rest.ItemPrice) string { return r.DisplayFleaPrice }},
				{title: "Best trader", cell: func(r rest.ItemPrice) string { return r.DisplayBestTrader }},
				{title: "Best sell", cell: func(r rest.ItemPrice) string { return r.DisplayBestSell }},
			})
		},
	}
}

func newCategoryCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "category <Ammo|Meds>",
		Short:     "Price table of a whole item category",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(value.CategoryAmmo), string(value.CategoryMeds)},
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := value.ParseCategory(args[0])
			if err != nil {
				return fmt.Errorf("value.ParseCategory: %w", err)
			}

			ctx, s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			panel := s.deps.Dashboard.Category(ctx, s.lang, category)

			return printPanel(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags.json, server.NewRESTPanel(panel, server.NewRESTCategoryItem), []column[rest.CategoryItem]{
				{title: "Name", cell: func(r rest.CategoryItem) string { return r.Name }},
				{title: "Flea", cell: func(r rest.CategoryItem) string { return r.DisplayFleaPrice }},
				{title: "Trader", cell: func(r rest.CategoryItem) string { return r.DisplayTrader }},
				{title: "Trader price", cell: func(r rest.CategoryItem) string { return r.DisplayTraderPrice }},
			})
		},
	}
}

// barterLine одна строка таблицы бартеров: предмет и одна сделка.
type barterLine struct {
	item  string
	trade rest.BarterTrade
}

func newBartersCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "barters <name>",
		Short: "Barters that produce or consume items matching a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			panel := server.NewRESTPanel(s.deps.Dashboard.Barters(ctx, s.lang, strings.Join(args, " ")), server.NewRESTBarterItem)
			if flags.json {
				return printPanel(cmd.OutOrStdout(), cmd.ErrOrStderr(), true, panel, nil)
			}

			lines := rest.Panel[barterLine]{Notice: panel.Notice}
			for _, item := range panel.Rows {
				for _, trade := range slices.Concat(item.Produces, item.Consumes) {
					lines.Rows = append(lines.Rows, barterLine{item: item.Name, trade: trade})
				}
			}

			return printPanel(cmd.OutOrStdout(), cmd.ErrOrStderr(), false, lines, []column[barterLine]{
				{title: "Item", cell: func(l barterLine) string { return l.item }},
				{title: "Side", cell: func(l barterLine) string { return l.trade.Side }},
				{title: "Trader", cell: func(l barterLine) string { return l.trade.Label }},
				{title: "Counterparts", cell: func(l barterLine) string { return l.trade.Chain }},
			})
		},
	}
}

func newTaskItemsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "task-items",
		Short: "Items that quests require to be handed over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			panel := s.deps.Dashboard.TaskItems(ctx, s.lang)

			return printPanel(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags.json, server.NewRESTPanel(panel, server.NewRESTTaskItem), []column[rest.TaskItem]{
				{title: "Name", cell: func(r rest.TaskItem) string { return r.Name }},
				{title: "Total", cell: func(r rest.TaskItem) string { return strconv.Itoa(r.TotalCount) }},
				{title: "FiR", cell: func(r rest.TaskItem) string { return strconv.Itoa(r.FoundInRaidCount) }},
				{title: "Traders", cell: func(r rest.TaskItem) string { return r.DisplayTraders }},
				{title: "Flea", cell: func(r rest.TaskItem) string { return r.DisplayFleaPrice }},
				{title: "Best trader", cell: func(r rest.TaskItem) string { return r.DisplayBestTrader }},
			})
		},
	}
}

func newTasksCmd(flags *globalFlags) *cobra.Command {
	var (
		trader   string
		mapNames []string
		maxLevel int
		text     string
	)

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Quests of one trader filtered by map, level and text",
		Long: "Quests of one trader filtered by map, level and text.\n\nTraders: " + strings.Join(traders, ", ") +
			"\nMaps: " + strings.Join(maps, ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			panel := s.deps.Dashboard.Tasks(ctx, s.lang, task.Filter{
				TraderNormalizedName: value.Normalize(trader),
				Maps:                 mapNames,
				MaxPlayerLevel:       maxLevel,
				Text:                 text,
			})

			return printPanel(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags.json, server.NewRESTPanel(panel, server.NewRESTTask), []column[rest.Task]{
				{title: "Name", cell: func(r rest.Task) string { return r.Name }},
				{title: "Map", cell: func(r rest.Task) string { return r.Map }},
				{title: "Objectives", cell: func(r rest.Task) string { return strings.Join(r.Objectives, "\n") }},
			})
		},
	}

	cmd.Flags().StringVar(&trader, "trader", "", "trader name, e.g. Prapor")
	cmd.Flags().StringSliceVar(&mapNames, "map", nil, "map names; repeat or comma-separate, empty means all")
	cmd.Flags().IntVar(&maxLevel, "max-level", defaultMaxPlayerLevel, "maximum required player level")
	cmd.Flags().StringVarP(&text, "query", "q", "", "case-insensitive text in quest name or objectives")
	_ = cmd.MarkFlagRequired("trader")

	return cmd
}

func newCraftsCmd(flags *globalFlags) *cobra.Command {
	var (
		station     string
		maxLevel    int
		itemName    string
		includeLoss bool
		sortKey     string
	)

	cmd := &cobra.Command{
		Use:   "crafts",
		Short: "Hideout crafts of one station with profit per hour",
		Long:  "Hideout crafts of one station with profit per hour.\n\nStations: " + strings.Join(stations, ", "),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := value.ParseSortKey(sortKey)
			if err != nil {
				return fmt.Errorf("value.ParseSortKey: %w", err)
			}

			ctx, s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			panel := s.deps.Dashboard.Crafts(ctx, s.lang, craft.Query{
				StationNormalizedName: value.Normalize(station),
				MaxStationLevel:       maxLevel,
				ItemName:              itemName,
				ExcludeLoss:           !includeLoss,
				SortKey:               key,
			})

			return printPanel(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags.json, server.NewRESTPanel(panel, server.NewRESTCraft), []column[rest.Craft]{
				{title: "Lv", cell: func(r rest.Craft) string { return strconv.Itoa(r.Level) }},
				{title: "Products", cell: func(r rest.Craft) string { return r.Products }},
				{title: "Materials", cell: func(r rest.Craft) string { return r.Materials }},
				{title: "Profit", cell: func(r rest.Craft) string { return r.DisplayProfit }},
				{title: "Per hour", cell: func(r rest.Craft) string { return r.DisplayProfitPerHour }},
				{title: "Time", cell: func(r rest.Craft) string { return r.DisplayDuration }},
			})
		},
	}

	cmd.Flags().StringVar(&station, "station", "", "hideout station, e.g. Workbench")
	cmd.Flags().IntVar(&maxLevel, "max-level", defaultMaxStationLevel, "maximum station level")
	cmd.Flags().StringVarP(&itemName, "query", "q", "", "case-insensitive product name")
	cmd.Flags().BoolVar(&includeLoss, "include-loss", false, "keep crafts with negative profit")
	cmd.Flags().StringVar(&sortKey, "sort", string(value.SortProfit), "sort key: profit, hourly or time")
	_ = cmd.MarkFlagRequired("station")

	return cmd
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
