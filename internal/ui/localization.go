package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"

	"github.com/ytget/movie-explorer/internal/browser"
	"github.com/ytget/movie-explorer/internal/model"
)

// Localization manages UI text translations. It is safe for concurrent use;
// texts is read-only after construction.
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyGridColumns     = "grid_columns"
	KeyMaxParallel     = "max_parallel"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyClose           = "close"
	KeySettingsSaved   = "settings_saved"
	KeyLoading         = "loading"
	KeyError           = "error"
	KeyInfo            = "info"
	KeyRandomMovie     = "random_movie"
	KeyFilterByGenre   = "filter_by_genre"
	KeyPopularMovies   = "popular_movies"
	KeySearch          = "search"
	KeySearchHint      = "search_hint"
	KeyViewFavorites   = "view_favorites"
	KeyBack            = "back"
	KeyAddToFavorites  = "add_to_favorites"
	KeyWatchTrailer    = "watch_trailer"
	KeyDetails         = "details"
	KeyRemove          = "remove"
	KeyFilter          = "filter"
	KeySelectGenre     = "select_genre"
	KeyFavoriteMovies  = "favorite_movies"
	KeyReleaseDate     = "release_date"
	KeyRuntime         = "runtime"
	KeyRating          = "rating"
	KeyHeadingLatest   = "heading_latest"
	KeyHeadingRandom   = "heading_random"
	KeyHeadingPopular  = "heading_popular"
	KeyHeadingSearch   = "heading_search"
	KeyHeadingGenre    = "heading_genre"
	KeyNoticePrefix    = "notice_"
	KeyNoMoviesToShow  = "no_movies"
	KeyNoFavoritesLeft = "no_favorites_left"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves to the base
// language of the OS locale; unsupported languages are ignored.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.mu.Lock()
		l.currentLanguage = code
		l.mu.Unlock()
	}
}

// systemLanguage returns the ISO 639 base of the OS locale, "en" when unknown
func systemLanguage() string {
	tag, err := language.Parse(string(lang.SystemLocale()))
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.GetCurrentLanguage()]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// HeadingText returns the listing heading for a view state
func (l *Localization) HeadingText(state model.ViewState) string {
	switch state.Kind {
	case model.ViewRandom:
		return l.GetText(KeyHeadingRandom)
	case model.ViewPopular:
		return l.GetText(KeyHeadingPopular)
	case model.ViewSearch:
		return fmt.Sprintf(l.GetText(KeyHeadingSearch), state.Query)
	case model.ViewGenre:
		return fmt.Sprintf(l.GetText(KeyHeadingGenre), state.Genre)
	default:
		return l.GetText(KeyHeadingLatest)
	}
}

// NoticeText returns the user-facing message for a controller notice
func (l *Localization) NoticeText(n browser.Notice) string {
	text := l.GetText(KeyNoticePrefix + string(n.Code))
	if n.Subject != "" {
		text = fmt.Sprintf("%s: %s", text, n.Subject)
	}
	if n.Err != nil {
		text = fmt.Sprintf("%s (%v)", text, n.Err)
	}
	return text
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Movie Explorer",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyGridColumns:     "Grid Columns",
		KeyMaxParallel:     "Max Parallel Poster Downloads",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyClose:           "Close",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyLoading:         "Loading...",
		KeyError:           "Error",
		KeyInfo:            "Info",
		KeyRandomMovie:     "Random Movie",
		KeyFilterByGenre:   "Filter by Genre",
		KeyPopularMovies:   "Popular Movies",
		KeySearch:          "Search",
		KeySearchHint:      "Search movies...",
		KeyViewFavorites:   "View Favorites",
		KeyBack:            "Back",
		KeyAddToFavorites:  "Add to Favorites",
		KeyWatchTrailer:    "Watch Trailer",
		KeyDetails:         "Details",
		KeyRemove:          "Remove",
		KeyFilter:          "Filter",
		KeySelectGenre:     "Select Genre",
		KeyFavoriteMovies:  "Favorite Movies",
		KeyReleaseDate:     "Release Date",
		KeyRuntime:         "Runtime",
		KeyRating:          "Rating",
		KeyHeadingLatest:   "Latest Movies",
		KeyHeadingRandom:   "Random Movie",
		KeyHeadingPopular:  "Popular Movies",
		KeyHeadingSearch:   "Search Results for: %s",
		KeyHeadingGenre:    "Genre: %s",
		KeyNoMoviesToShow:  "No movies found.",
		KeyNoFavoritesLeft: "No favorite movies yet.",

		KeyNoticePrefix + string(browser.CodeFetchFailed):     "Failed to fetch data",
		KeyNoticePrefix + string(browser.CodeEmptyQuery):      "Please enter a movie title",
		KeyNoticePrefix + string(browser.CodeFavoriteAdded):   "Added to favorites",
		KeyNoticePrefix + string(browser.CodeAlreadyFavorite): "Already in favorites",
		KeyNoticePrefix + string(browser.CodeFavoriteRemoved): "Removed from favorites",
		KeyNoticePrefix + string(browser.CodeNotFavorite):     "Not in favorites",
		KeyNoticePrefix + string(browser.CodeNoFavorites):     "You have no favorite movies",
		KeyNoticePrefix + string(browser.CodeNoTrailer):       "No trailer available",
		KeyNoticePrefix + string(browser.CodeOpenFailed):      "Could not open the trailer",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Обозреватель фильмов",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyGridColumns:     "Колонки сетки",
		KeyMaxParallel:     "Макс. параллельных загрузок постеров",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyClose:           "Закрыть",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyLoading:         "Загрузка...",
		KeyError:           "Ошибка",
		KeyInfo:            "Информация",
		KeyRandomMovie:     "Случайный фильм",
		KeyFilterByGenre:   "Фильтр по жанру",
		KeyPopularMovies:   "Популярные фильмы",
		KeySearch:          "Поиск",
		KeySearchHint:      "Поиск фильмов...",
		KeyViewFavorites:   "Избранное",
		KeyBack:            "Назад",
		KeyAddToFavorites:  "В избранное",
		KeyWatchTrailer:    "Смотреть трейлер",
		KeyDetails:         "Подробнее",
		KeyRemove:          "Удалить",
		KeyFilter:          "Фильтр",
		KeySelectGenre:     "Выберите жанр",
		KeyFavoriteMovies:  "Избранные фильмы",
		KeyReleaseDate:     "Дата выхода",
		KeyRuntime:         "Длительность",
		KeyRating:          "Рейтинг",
		KeyHeadingLatest:   "Новые фильмы",
		KeyHeadingRandom:   "Случайный фильм",
		KeyHeadingPopular:  "Популярные фильмы",
		KeyHeadingSearch:   "Результаты поиска: %s",
		KeyHeadingGenre:    "Жанр: %s",
		KeyNoMoviesToShow:  "Фильмы не найдены.",
		KeyNoFavoritesLeft: "В избранном пока пусто.",

		KeyNoticePrefix + string(browser.CodeFetchFailed):     "Не удалось получить данные",
		KeyNoticePrefix + string(browser.CodeEmptyQuery):      "Введите название фильма",
		KeyNoticePrefix + string(browser.CodeFavoriteAdded):   "Добавлено в избранное",
		KeyNoticePrefix + string(browser.CodeAlreadyFavorite): "Уже в избранном",
		KeyNoticePrefix + string(browser.CodeFavoriteRemoved): "Удалено из избранного",
		KeyNoticePrefix + string(browser.CodeNotFavorite):     "Нет в избранном",
		KeyNoticePrefix + string(browser.CodeNoFavorites):     "У вас нет избранных фильмов",
		KeyNoticePrefix + string(browser.CodeNoTrailer):       "Трейлер недоступен",
		KeyNoticePrefix + string(browser.CodeOpenFailed):      "Не удалось открыть трейлер",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Explorador de Filmes",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyGridColumns:     "Colunas da Grade",
		KeyMaxParallel:     "Max Downloads de Pôsteres Paralelos",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyClose:           "Fechar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyLoading:         "Carregando...",
		KeyError:           "Erro",
		KeyInfo:            "Informação",
		KeyRandomMovie:     "Filme Aleatório",
		KeyFilterByGenre:   "Filtrar por Gênero",
		KeyPopularMovies:   "Filmes Populares",
		KeySearch:          "Buscar",
		KeySearchHint:      "Buscar filmes...",
		KeyViewFavorites:   "Ver Favoritos",
		KeyBack:            "Voltar",
		KeyAddToFavorites:  "Adicionar aos Favoritos",
		KeyWatchTrailer:    "Ver Trailer",
		KeyDetails:         "Detalhes",
		KeyRemove:          "Remover",
		KeyFilter:          "Filtrar",
		KeySelectGenre:     "Selecione o Gênero",
		KeyFavoriteMovies:  "Filmes Favoritos",
		KeyReleaseDate:     "Data de Lançamento",
		KeyRuntime:         "Duração",
		KeyRating:          "Avaliação",
		KeyHeadingLatest:   "Últimos Filmes",
		KeyHeadingRandom:   "Filme Aleatório",
		KeyHeadingPopular:  "Filmes Populares",
		KeyHeadingSearch:   "Resultados da busca: %s",
		KeyHeadingGenre:    "Gênero: %s",
		KeyNoMoviesToShow:  "Nenhum filme encontrado.",
		KeyNoFavoritesLeft: "Nenhum filme favorito ainda.",

		KeyNoticePrefix + string(browser.CodeFetchFailed):     "Falha ao obter dados",
		KeyNoticePrefix + string(browser.CodeEmptyQuery):      "Digite o título de um filme",
		KeyNoticePrefix + string(browser.CodeFavoriteAdded):   "Adicionado aos favoritos",
		KeyNoticePrefix + string(browser.CodeAlreadyFavorite): "Já está nos favoritos",
		KeyNoticePrefix + string(browser.CodeFavoriteRemoved): "Removido dos favoritos",
		KeyNoticePrefix + string(browser.CodeNotFavorite):     "Não está nos favoritos",
		KeyNoticePrefix + string(browser.CodeNoFavorites):     "Você não tem filmes favoritos",
		KeyNoticePrefix + string(browser.CodeNoTrailer):       "Nenhum trailer disponível",
		KeyNoticePrefix + string(browser.CodeOpenFailed):      "Não foi possível abrir o trailer",
	}
}
