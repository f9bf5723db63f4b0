package server

import (
	"context"
	"fmt"
	"net/http"

	"tarkov_market/internal/domain/service/ammo"
	"tarkov_market/internal/domain/service/catalog"
	"tarkov_market/internal/domain/service/craft"
	"tarkov_market/internal/domain/service/dashboard"
	"tarkov_market/internal/domain/service/task"
	"tarkov_market/internal/domain/service/taskitem"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/httpx/reply"
	"tarkov_market/pkg/httpx/req"
)

type dashboardService interface {
	Ammo(ctx context.Context, lang value.Language, q dashboard.AmmoQuery) dashboard.Panel[ammo.Row]
	Items(ctx context.Context, lang value.Language, name string) dashboard.Panel[catalog.Entry]
	Category(ctx context.Context, lang value.Language, category value.Category) dashboard.Panel[catalog.Row]
	Barters(ctx context.Context, lang value.Language, name string) dashboard.Panel[dashboard.BarterEntry]
	TaskItems(ctx context.Context, lang value.Language) dashboard.Panel[taskitem.Row]
	Tasks(ctx context.Context, lang value.Language, filter task.Filter) dashboard.Panel[task.Row]
	Crafts(ctx context.Context, lang value.Language, q craft.Query) dashboard.Panel[craft.Row]
}

type DashboardServer struct {
	dashboard   dashboardService
	defaultLang value.Language
}

func NewDashboardServer(dashboardService dashboardService, defaultLang value.Language) DashboardServer {
	return DashboardServer{
		dashboard:   dashboardService,
		defaultLang: defaultLang,
	}
}

func (s DashboardServer) language(raw string) (value.Language, error) {
	if raw == "" {
		return s.defaultLang, nil
	}

	lang, err := value.ParseLanguage(raw)
	if err != nil {
		return "", fmt.Errorf("value.ParseLanguage: %w", err)
	}

	return lang, nil
}

func (s DashboardServer) getV1Ammo(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var q ammoQuery
	if err := req.Query(r, &q); err != nil {
		return fmt.Errorf("req.Query: %w", err)
	}

	lang, err := s.language(q.Lang)
	if err != nil {
		return err
	}

	panel := s.dashboard.Ammo(ctx, lang, dashboard.AmmoQuery{
		Caliber: q.Caliber,
		Filter: ammo.Filter{
			MinPenetration: float64(q.MinPenetration),
			MinDamage:      float64(q.MinDamage),
		},
	})

	reply.JSON(ctx, w, http.StatusOK, NewRESTPanel(panel, NewRESTAmmo))

	return nil
}

func (s DashboardServer) getV1Items(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var q searchQuery
	if err := req.Query(r, &q); err != nil {
		return fmt.Errorf("req.Query: %w", err)
	}

	lang, err := s.language(q.Lang)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, NewRESTPanel(s.dashboard.Items(ctx, lang, q.Q), NewRESTItemPrice))

	return nil
}

func (s DashboardServer) getV1ItemsCategory(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var q categoryQuery
	if err := req.Query(r, &q); err != nil {
		return fmt.Errorf("req.Query: %w", err)
	}

	lang, err := s.language(q.Lang)
	if err != nil {
		return err
	}

	category, err := value.ParseCategory(q.Category)
	if err != nil {
		return fmt.Errorf("value.ParseCategory: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, NewRESTPanel(s.dashboard.Category(ctx, lang, category), NewRESTCategoryItem))

	return nil
}

func (s DashboardServer) getV1Barters(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var q searchQuery
	if err := req.Query(r, &q); err != nil {
		return fmt.Errorf("req.Query: %w", err)
	}

	lang, err := s.language(q.Lang)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, NewRESTPanel(s.dashboard.Barters(ctx, lang, q.Q), NewRESTBarterItem))

	return nil
}

func (s DashboardServer) getV1TaskItems(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var q langQuery
	if err := req.Query(r, &q); err != nil {
		return fmt.Errorf("req.Query: %w", err)
	}

	lang, err := s.language(q.Lang)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, NewRESTPanel(s.dashboard.TaskItems(ctx, lang), NewRESTTaskItem))

	return nil
}

func (s DashboardServer) getV1Tasks(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var q tasksQuery
	if err := req.Query(r, &q); err != nil {
		return fmt.Errorf("req.Query: %w", err)
	}

	lang, err := s.language(q.Lang)
	if err != nil {
		return err
	}

	panel := s.dashboard.Tasks(ctx, lang, task.Filter{
		TraderNormalizedName: value.Normalize(q.Trader),
		Maps:                 q.Maps,
		MaxPlayerLevel:       q.MaxLevel,
		Text:                 q.Q,
	})

	reply.JSON(ctx, w, http.StatusOK, NewRESTPanel(panel, NewRESTTask))

	return nil
}

func (s DashboardServer) getV1Crafts(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var q craftsQuery
	if err := req.Query(r, &q); err != nil {
		return fmt.Errorf("req.Query: %w", err)
	}

	lang, err := s.language(q.Lang)
	if err != nil {
		return err
	}

	sortKey, err := value.ParseSortKey(q.Sort)
	if err != nil {
		return fmt.Errorf("value.ParseSortKey: %w", err)
	}

	panel := s.dashboard.Crafts(ctx, lang, craft.Query{
		StationNormalizedName: value.Normalize(q.Station),
		MaxStationLevel:       q.MaxLevel,
		ItemName:              q.Q,
		ExcludeLoss:           q.ExcludeLoss,
		SortKey:               sortKey,
	})

	reply.JSON(ctx, w, http.StatusOK, NewRESTPanel(panel, NewRESTCraft))

	return nil
}
