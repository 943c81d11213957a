package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyTabAll          = "tab_all"
	KeyTabFriends      = "tab_friends"
	KeyTabPicks        = "tab_picks"
	KeyTabTrending     = "tab_trending"
	KeyTabLists        = "tab_lists"
	KeyLoading         = "loading"
	KeyFeedError       = "feed_error"
	KeyRetry           = "retry"
	KeyEmptyFeed       = "empty_feed"
	KeyPicksDone       = "picks_done"
	KeyNoRating        = "no_rating"
	KeySortNewest      = "sort_newest"
	KeySortRatingDesc  = "sort_rating_desc"
	KeySortRatingAsc   = "sort_rating_asc"
	KeyCategoryFilter  = "category_filter"
	KeyNewList         = "new_list"
	KeyListName        = "list_name"
	KeyRename          = "rename"
	KeyDelete          = "delete"
	KeyCancel          = "cancel"
	KeyCreate          = "create"
	KeySave            = "save"
	KeyAddToLists      = "add_to_lists"
	KeyRemoveFromList  = "remove_from_list"
	KeyDefaultListNote = "default_list_note"
	KeyNameRequired    = "name_required"
	KeyAddPartialError = "add_partial_error"
	KeyDeleteConfirm   = "delete_confirm"
	KeyLanguage        = "language"
	KeySettings        = "settings"
	KeyFile            = "file"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
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

// GetAvailableLanguages returns the selectable languages
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
}

// initializeTexts fills the translation tables
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Vidscope",
		KeyTabAll:          "Discover",
		KeyTabFriends:      "Friends",
		KeyTabPicks:        "Sunday Picks",
		KeyTabTrending:     "Trending",
		KeyTabLists:        "My Lists",
		KeyLoading:         "Loading…",
		KeyFeedError:       "Could not load the feed",
		KeyRetry:           "Try again",
		KeyEmptyFeed:       "Nothing here yet",
		KeyPicksDone:       "You have seen all of this week's picks",
		KeyNoRating:        "Not rated yet",
		KeySortNewest:      "Newest",
		KeySortRatingDesc:  "Best rated",
		KeySortRatingAsc:   "Lowest rated",
		KeyCategoryFilter:  "Filter by category",
		KeyNewList:         "New list",
		KeyListName:        "List name",
		KeyRename:          "Rename",
		KeyDelete:          "Delete",
		KeyCancel:          "Cancel",
		KeyCreate:          "Create",
		KeySave:            "Save",
		KeyAddToLists:      "Add to lists",
		KeyRemoveFromList:  "Remove",
		KeyDefaultListNote: "This is your default list",
		KeyNameRequired:    "Please enter a name",
		KeyAddPartialError: "The video could not be added to every selected list",
		KeyDeleteConfirm:   "Delete this list?",
		KeyLanguage:        "Language",
		KeySettings:        "Settings",
		KeyFile:            "File",
	}

	l.texts["de"] = map[string]string{
		KeyAppTitle:        "Vidscope",
		KeyTabAll:          "Entdecken",
		KeyTabFriends:      "Freunde",
		KeyTabPicks:        "Sonntags-Auswahl",
		KeyTabTrending:     "Im Trend",
		KeyTabLists:        "Meine Listen",
		KeyLoading:         "Lädt…",
		KeyFeedError:       "Feed konnte nicht geladen werden",
		KeyRetry:           "Erneut versuchen",
		KeyEmptyFeed:       "Noch nichts zu sehen",
		KeyPicksDone:       "Du hast alle Empfehlungen dieser Woche gesehen",
		KeyNoRating:        "Noch keine Bewertung",
		KeySortNewest:      "Neueste",
		KeySortRatingDesc:  "Beste Bewertung",
		KeySortRatingAsc:   "Niedrigste Bewertung",
		KeyCategoryFilter:  "Nach Kategorie filtern",
		KeyNewList:         "Neue Liste",
		KeyListName:        "Listenname",
		KeyRename:          "Umbenennen",
		KeyDelete:          "Löschen",
		KeyCancel:          "Abbrechen",
		KeyCreate:          "Erstellen",
		KeySave:            "Speichern",
		KeyAddToLists:      "Zu Listen hinzufügen",
		KeyRemoveFromList:  "Entfernen",
		KeyDefaultListNote: "Das ist deine Standardliste",
		KeyNameRequired:    "Bitte einen Namen eingeben",
		KeyAddPartialError: "Das Video konnte nicht zu allen Listen hinzugefügt werden",
		KeyDeleteConfirm:   "Diese Liste löschen?",
		KeyLanguage:        "Sprache",
		KeySettings:        "Einstellungen",
		KeyFile:            "Datei",
	}
}
