package poster

// Package poster downloads movie posters from the TMDB image CDN, rejects
// payloads that are not images and scales them to the card or detail box.
