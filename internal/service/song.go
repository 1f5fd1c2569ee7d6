package service

import (
	"context"

	"friends-corner/internal/model"
	"friends-corner/internal/store"
)

// SongService mirrors PhotoService for song submissions and additionally
// derives the video id and thumbnail at intake.
type SongService struct {
	store *store.Store
}

func NewSongService(st *store.Store) *SongService { return &SongService{store: st} }

// Upload validates the submission, derives the video fields from the raw URL
// once, and stores the song unapproved. The derived fields are never
// recomputed after this point.
func (s *SongService) Upload(ctx context.Context, in model.SongUpload) (*model.Song, error) {
	if in.Title == "" || in.Artist == "" || in.YouTubeURL == "" || in.AddedBy == "" {
		return nil, ValidationError("Missing required fields")
	}

	videoID, ok := ExtractYouTubeID(in.YouTubeURL)
	if !ok {
		return nil, ValidationError("Invalid YouTube URL")
	}

	song := &model.Song{
		Title:        in.Title,
		Artist:       in.Artist,
		YouTubeURL:   in.YouTubeURL,
		YouTubeID:    videoID,
		ThumbnailURL: YouTubeThumbnail(videoID),
		Description:  in.Description,
		AddedBy:      in.AddedBy,
		Tags:         ParseTags(in.Tags),
		Mood:         in.Mood,
		Lyrics:       in.Lyrics,
	}
	if err := s.store.CreateSong(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *SongService) ListApproved(ctx context.Context) ([]model.Song, error) {
	return s.store.ListSongs(ctx, store.FilterApproved)
}

func (s *SongService) ListPending(ctx context.Context) ([]model.Song, error) {
	return s.store.ListSongs(ctx, store.FilterPending)
}

func (s *SongService) ListAll(ctx context.Context) ([]model.Song, error) {
	return s.store.ListSongs(ctx, store.FilterAll)
}

func (s *SongService) Get(ctx context.Context, id int) (*model.Song, error) {
	return s.store.GetSongByID(ctx, id)
}

func (s *SongService) Approve(ctx context.Context, id int) error {
	return s.store.ApproveSong(ctx, id)
}

func (s *SongService) Remove(ctx context.Context, id int) error {
	return s.store.DeleteSong(ctx, id)
}
