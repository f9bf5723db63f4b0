package server

import (
	"net/url"
	"strings"

	"tarkov_market/pkg/httpx/req"
)

const (
	defaultMaxPlayerLevel  = 70
	defaultMaxStationLevel = 3
)

type langQuery struct {
	Lang string `validate:"omitempty,oneof=ja en"`
}

func (q *langQuery) BindQuery(values url.Values) error {
	q.Lang = values.Get("lang")

	return nil
}

type ammoQuery struct {
	langQuery
	Caliber        string `validate:"required"`
	MinPenetration int    `validate:"gte=0,lte=100"`
	MinDamage      int    `validate:"gte=0,lte=500"`
}

func (q *ammoQuery) BindQuery(values url.Values) error {
	var err error

	q.Lang = values.Get("lang")
	q.Caliber = strings.TrimSpace(values.Get("caliber"))

	if q.MinPenetration, err = req.Int(values, "minPenetration", 0); err != nil {
		return err
	}

	if q.MinDamage, err = req.Int(values, "minDamage", 0); err != nil {
		return err
	}

	return nil
}

type searchQuery struct {
	langQuery
	Q string `validate:"required"`
}

func (q *searchQuery) BindQuery(values url.Values) error {
	q.Lang = values.Get("lang")
	q.Q = strings.TrimSpace(values.Get("q"))

	return nil
}

type categoryQuery struct {
	langQuery
	Category string `validate:"required,oneof=Ammo Meds"`
}

func (q *categoryQuery) BindQuery(values url.Values) error {
	q.Lang = values.Get("lang")
	q.Category = values.Get("category")

	return nil
}

type tasksQuery struct {
	langQuery
	Trader   string   `validate:"required"`
	Maps     []string `validate:"dive,required"`
	MaxLevel int      `validate:"gte=1,lte=100"`
	Q        string
}

func (q *tasksQuery) BindQuery(values url.Values) error {
	var err error

	q.Lang = values.Get("lang")
	q.Trader = strings.TrimSpace(values.Get("trader"))
	q.Maps = values["map"]
	q.Q = values.Get("q")

	if q.MaxLevel, err = req.Int(values, "maxLevel", defaultMaxPlayerLevel); err != nil {
		return err
	}

	return nil
}

type craftsQuery struct {
	langQuery
	Station     string `validate:"required"`
	MaxLevel    int    `validate:"gte=1,lte=3"`
	Q           string
	ExcludeLoss bool
	Sort        string `validate:"omitempty,oneof=profit hourly time"`
}

func (q *craftsQuery) BindQuery(values url.Values) error {
	var err error

	q.Lang = values.Get("lang")
	q.Station = strings.TrimSpace(values.Get("station"))
	q.Q = values.Get("q")
	q.Sort = values.Get("sort")

	if q.MaxLevel, err = req.Int(values, "maxLevel", defaultMaxStationLevel); err != nil {
		return err
	}

	if q.ExcludeLoss, err = req.Bool(values, "excludeLoss", true); err != nil {
		return err
	}

	return nil
}
