package http

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/turi333-pixel/Gigstar/entity"
	"github.com/turi333-pixel/Gigstar/event"
	"github.com/turi333-pixel/Gigstar/gateway"
)

const hotListSize = 12

type handler struct {
	searcher   Searcher
	publisher  Publisher
	users      UserRepo
	favourites FavouriteRepo
	history    HistoryRepo
	sessions   SessionStore
	trending   TrendingRepo
	validate   *validator.Validate
	log        logrus.FieldLogger
}

func (h handler) SearchEvents(c echo.Context) error {
	req := gateway.Request{
		City:      c.QueryParam("city"),
		LatLong:   c.QueryParam("latlong"),
		Genre:     c.QueryParam("genre"),
		DateRange: c.QueryParam("dateRange"),
		Keyword:   c.QueryParam("keyword"),
		Size:      intParam(c, "size"),
		Page:      intParam(c, "page"),
	}

	res := h.searcher.Search(c.Request().Context(), req)

	if req.Keyword != "" {
		e := event.NewSearchPerformed(h.optionalUserID(c), req.Keyword, req.City, req.Genre)
		if err := h.publisher.Publish(c.Request().Context(), e); err != nil {
			// Activity tracking never blocks a search result.
			h.log.WithError(err).Warn("publishing search event failed")
		}
	}

	return c.JSON(http.StatusOK, res)
}

func (h handler) GetEvent(c echo.Context) error {
	ev := h.searcher.Lookup(c.Request().Context(), c.Param("id"))
	return c.JSON(http.StatusOK, ev)
}

// HotEvents serves the landing-page listing: the current search result set
// reordered so that the most-favourited events come first.
func (h handler) HotEvents(c echo.Context) error {
	req := gateway.Request{
		City: c.QueryParam("city"),
		Size: hotListSize,
	}

	res := h.searcher.Search(c.Request().Context(), req)

	ids, err := h.trending.Top(c.Request().Context(), hotListSize)
	if err != nil {
		h.log.WithError(err).Warn("reading trending ranking failed")
		return c.JSON(http.StatusOK, res)
	}

	res.Events = rankByTrending(res.Events, ids)
	return c.JSON(http.StatusOK, res)
}

// rankByTrending moves events present in the ranking to the front, keeping
// the ranking's order among them and the original order for the rest.
func rankByTrending(events []entity.Event, rankedIDs []string) []entity.Event {
	if len(rankedIDs) == 0 {
		return events
	}

	rank := make(map[string]int, len(rankedIDs))
	for i, id := range rankedIDs {
		rank[id] = i
	}

	ranked := make([]entity.Event, len(events))
	copy(ranked, events)
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, iOK := rank[ranked[i].ID]
		rj, jOK := rank[ranked[j].ID]
		if iOK && jOK {
			return ri < rj
		}
		return iOK && !jOK
	})

	return ranked
}

func intParam(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
