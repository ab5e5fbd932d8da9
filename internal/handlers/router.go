package handlers

import (
	"log/slog"
	"time"

	"darae_api/internal/config"
	"darae_api/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// RouterDeps はルーターの組み立てに必要なハンドラと設定
type RouterDeps struct {
	Config     *config.Config
	Logger     *slog.Logger
	Resolver   middleware.UserResolver
	Auth       *AuthHandler
	Language   *LanguageHandler
	Vocabulary *VocabularyHandler
	Expression *ExpressionHandler
	Grammar    *GrammarHandler
	Note       *NoteHandler
	Dictionary *DictionaryHandler
	Health     *HealthHandler
}

// NewRouter はミドルウェアと全ルートを登録した chi ルーターを返します
func NewRouter(d RouterDeps) *chi.Mux {
	cfg := d.Config
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.LoggingMiddleware(d.Logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	requireAuth := middleware.JWTAuthMiddleware(cfg.JWT.SecretKey, d.Resolver)

	r.Get("/", d.Health.Root)
	r.Get("/health", d.Health.Health)

	r.Post("/register", d.Auth.Register)
	r.Post("/token", d.Auth.Token)
	r.With(requireAuth).Get("/users/me", d.Auth.GetMe)

	r.Route("/languages", func(r chi.Router) {
		r.Get("/", d.Language.ListLanguages)
		r.With(requireAuth).Post("/", d.Language.CreateLanguage)
	})

	r.Route("/vocabulary", func(r chi.Router) {
		r.Get("/public", d.Vocabulary.ListPublicEntries)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", d.Vocabulary.ListEntries)
			r.Post("/", d.Vocabulary.CreateEntry)
			r.Get("/me", d.Vocabulary.ListMyEntries)
			r.Get("/{entry_id}", d.Vocabulary.GetEntry)
			r.Put("/{entry_id}", d.Vocabulary.UpdateEntry)
			r.Delete("/{entry_id}", d.Vocabulary.DeleteEntry)
		})
	})

	r.Route("/expressions", func(r chi.Router) {
		r.Get("/public", d.Expression.ListPublicExpressions)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", d.Expression.ListExpressions)
			r.Post("/", d.Expression.CreateExpression)
			r.Get("/me", d.Expression.ListMyExpressions)
			r.Get("/{expression_id}", d.Expression.GetExpression)
			r.Put("/{expression_id}", d.Expression.UpdateExpression)
			r.Delete("/{expression_id}", d.Expression.DeleteExpression)
		})
	})

	r.Route("/grammar", func(r chi.Router) {
		r.Get("/public", d.Grammar.ListPublicRules)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", d.Grammar.ListRules)
			r.Post("/", d.Grammar.CreateRule)
			r.Get("/me", d.Grammar.ListMyRules)
			r.Get("/{grammar_id}", d.Grammar.GetRule)
			r.Put("/{grammar_id}", d.Grammar.UpdateRule)
			r.Delete("/{grammar_id}", d.Grammar.DeleteRule)
		})
	})

	r.Route("/notes", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", d.Note.ListNotes)
		r.Post("/", d.Note.CreateNote)
		r.Get("/{note_id}", d.Note.GetNote)
		r.Put("/{note_id}", d.Note.UpdateNote)
		r.Delete("/{note_id}", d.Note.DeleteNote)
	})

	r.Get("/dictionary/global", d.Dictionary.GetGlobalDictionary)

	return r
}
