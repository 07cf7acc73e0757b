// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/core/like"
	"github.com/taibuivan/filmorate/internal/core/rating"
	"github.com/taibuivan/filmorate/internal/platform/constants"
	requestutil "github.com/taibuivan/filmorate/internal/platform/request"
	"github.com/taibuivan/filmorate/internal/platform/respond"
	"github.com/taibuivan/filmorate/internal/platform/validate"
	"github.com/taibuivan/filmorate/pkg/pointer"
)

// # Wire Format

// payload is the JSON shape of a film. Dates use YYYY-MM-DD.
type payload struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	ReleaseDate string         `json:"releaseDate"`
	Description string         `json:"description"`
	Duration    int            `json:"duration"`
	Rate        int            `json:"rate"`
	Mpa         *rating.Rating `json:"mpa"`
	Genres      []genre.Genre  `json:"genres"`
	Likes       []int64        `json:"likes"`
}

func toPayload(film *Film) payload {
	mpa := film.Rating
	return payload{
		ID:          film.ID,
		Name:        film.Name,
		ReleaseDate: film.ReleaseDate.Format(time.DateOnly),
		Description: film.Description,
		Duration:    film.Duration,
		Rate:        film.Rate,
		Mpa:         &mpa,
		Genres:      film.Genres,
		Likes:       film.Likes,
	}
}

func toPayloads(films []*Film) []payload {
	out := make([]payload, 0, len(films))
	for _, film := range films {
		out = append(out, toPayload(film))
	}
	return out
}

// toFilm converts a request body. A missing or null "genres" stays nil.
func (p payload) toFilm() (*Film, error) {
	film := &Film{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Duration:    p.Duration,
		Rate:        p.Rate,
		Genres:      p.Genres,
	}

	if p.Mpa != nil {
		film.Rating = rating.Rating{ID: p.Mpa.ID}
	}

	if p.ReleaseDate != "" {
		releaseDate, err := time.Parse(time.DateOnly, p.ReleaseDate)
		if err != nil {
			return nil, validate.RequiredError(FieldReleaseDate, "Must be a date in YYYY-MM-DD format")
		}
		film.ReleaseDate = releaseDate
	}

	return film, nil
}

// # Handler Implementation

// Handler implements the /films HTTP surface.
type Handler struct {
	service *Service
	likes   *like.Service
}

// NewHandler constructs a new film [Handler].
func NewHandler(service *Service, likes *like.Service) *Handler {
	return &Handler{service: service, likes: likes}
}

// Routes returns a [chi.Router] mounted at /films.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listFilms)
	router.Post("/", handler.createFilm)
	router.Put("/", handler.updateFilm)
	router.Get("/popular", handler.popularFilms)
	router.Get("/{id}", handler.getFilm)

	// ## Likes
	router.Put("/{id}/like/{userId}", handler.addLike)
	router.Delete("/{id}/like/{userId}", handler.removeLike)

	return router
}

// # Film Endpoints

func (handler *Handler) listFilms(writer http.ResponseWriter, request *http.Request) {
	films, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toPayloads(films))
}

/*
POST /films.

Response:
  - 201: Film: The stored film with its assigned id
  - 400: Validation failure
  - 404: Unknown rating or genre
*/
func (handler *Handler) createFilm(writer http.ResponseWriter, request *http.Request) {
	film, err := decodeFilm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), film)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, toPayload(created))
}

/*
PUT /films.

Description: Full replacement; the id travels in the body. Omitting "genres"
keeps the stored genres, sending [] clears them.
*/
func (handler *Handler) updateFilm(writer http.ResponseWriter, request *http.Request) {
	film, err := decodeFilm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), film)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toPayload(updated))
}

func (handler *Handler) getFilm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	film, err := handler.service.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toPayload(film))
}

/*
GET /films/popular.

Request:
  - count: int (default 10)
  - genreId: int (optional)
  - year: int (optional)
*/
func (handler *Handler) popularFilms(writer http.ResponseWriter, request *http.Request) {
	count, err := requestutil.OptionalIntQuery(request, "count")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	genreID, err := requestutil.OptionalIntQuery(request, "genreId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	year, err := requestutil.OptionalIntQuery(request, "year")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	films, err := handler.service.Popular(request.Context(), RankQuery{
		GenreID: genreID,
		Year:    year,
		Limit:   pointer.To(pointer.Fallback(count, constants.DefaultPopularCount)),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toPayloads(films))
}

// # Like Endpoints

func (handler *Handler) addLike(writer http.ResponseWriter, request *http.Request) {
	filmID, userID, err := likeParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.likes.Add(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) removeLike(writer http.ResponseWriter, request *http.Request) {
	filmID, userID, err := likeParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.likes.Remove(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Helpers

func decodeFilm(request *http.Request) (*Film, error) {
	var body payload
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		return nil, err
	}
	return body.toFilm()
}

func likeParams(request *http.Request) (int64, int64, error) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		return 0, 0, err
	}
	userID, err := requestutil.IntParam(request, "userId")
	if err != nil {
		return 0, 0, err
	}
	return filmID, userID, nil
}
