package service

import (
	"context"
	"sync"
)

type selectionService struct {
	records RecordService

	mu       sync.Mutex
	selected map[string]struct{}
}

func NewSelectionService(records RecordService) SelectionService {
	return &selectionService{
		records:  records,
		selected: make(map[string]struct{}),
	}
}

func (s *selectionService) Select(id string) {
	if !s.recordExists(id) {
		return
	}

	s.mu.Lock()
	s.selected[id] = struct{}{}
	s.mu.Unlock()
}

func (s *selectionService) Deselect(id string) {
	s.mu.Lock()
	delete(s.selected, id)
	s.mu.Unlock()
}

func (s *selectionService) SelectAll() {
	records := s.records.Records()

	s.mu.Lock()
	s.selected = make(map[string]struct{}, len(records))
	for _, r := range records {
		s.selected[r.ID] = struct{}{}
	}
	s.mu.Unlock()
}

func (s *selectionService) ClearSelection() {
	s.mu.Lock()
	s.selected = make(map[string]struct{})
	s.mu.Unlock()
}

func (s *selectionService) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.selected))
	for id := range s.selected {
		out = append(out, id)
	}
	return out
}

func (s *selectionService) DeleteSelected(ctx context.Context) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	s.selected = make(map[string]struct{})
	s.mu.Unlock()

	s.records.RemoveRecords(ctx, ids)
}

func (s *selectionService) recordExists(id string) bool {
	for _, r := range s.records.Records() {
		if r.ID == id {
			return true
		}
	}
	return false
}
