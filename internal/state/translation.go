package state

import (
	"context"

	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"go.uber.org/zap"
)

func (s *State) SelectTranslation(ctx context.Context, id string) {
	s.mu.Lock()
	s.selectedTranslation = id
	s.mu.Unlock()
	if err := s.deps.Settings.SetSelectedTranslation(id); err != nil {
		log.Warn("Unable to save selected translation", zap.Error(err))
	}
	s.publish(EventSelection)
	s.LoadChapter(ctx)
}

// SetSelectedTranslations replaces the displayed translations. An empty list
// is ignored. The primary translation stays put when still selected, the
// order list keeps its existing order, appends new ids and drops deselected ones.
func (s *State) SetSelectedTranslations(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}
	s.selectTranslations(ids)
	s.LoadChapter(ctx)
}

func (s *State) selectTranslations(ids []string) {
	selected := map[string]bool{}
	for _, id := range ids {
		selected[id] = true
	}

	s.mu.Lock()
	s.selectedTranslations = append([]string(nil), ids...)
	if !selected[s.selectedTranslation] {
		s.selectedTranslation = ids[0]
	}
	order := []string{}
	inOrder := map[string]bool{}
	for _, id := range s.order {
		if selected[id] && !inOrder[id] {
			order = append(order, id)
			inOrder[id] = true
		}
	}
	for _, id := range ids {
		if !inOrder[id] {
			order = append(order, id)
			inOrder[id] = true
		}
	}
	s.order = order
	s.mu.Unlock()

	if err := s.deps.Settings.SetSelectedTranslation(ids[0]); err != nil {
		log.Warn("Unable to save selected translation", zap.Error(err))
	}
	if err := s.deps.Settings.SetTranslationsOrder(order); err != nil {
		log.Warn("Unable to save translations order", zap.Error(err))
	}
	s.publish(EventSelection)
}

// ToggleTranslation adds or removes id, never removing the last one.
func (s *State) ToggleTranslation(ctx context.Context, id string) {
	s.mu.Lock()
	current := append([]string(nil), s.selectedTranslations...)
	s.mu.Unlock()

	next := []string{}
	found := false
	for _, cur := range current {
		if cur == id {
			found = true
			continue
		}
		next = append(next, cur)
	}
	if !found {
		s.SetSelectedTranslations(ctx, append(current, id))
		return
	}
	if len(next) > 0 {
		s.SetSelectedTranslations(ctx, next)
	}
}

func (s *State) IsTranslationSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cur := range s.selectedTranslations {
		if cur == id {
			return true
		}
	}
	return false
}

func (s *State) SetTranslationsOrder(order []string) {
	s.mu.Lock()
	s.order = append([]string(nil), order...)
	s.mu.Unlock()
	if err := s.deps.Settings.SetTranslationsOrder(order); err != nil {
		log.Warn("Unable to save translations order", zap.Error(err))
	}
	s.publish(EventSelection)
}

// SelectedTranslationsInOrder is the selection sorted by the user's order.
func (s *State) SelectedTranslationsInOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.order) == 0 {
		return append([]string(nil), s.selectedTranslations...)
	}
	selected := map[string]bool{}
	for _, id := range s.selectedTranslations {
		selected[id] = true
	}
	out := []string{}
	for _, id := range s.order {
		if selected[id] {
			out = append(out, id)
		}
	}
	return out
}

// RefreshTranslations updates the available translations from the registry.
func (s *State) RefreshTranslations(ctx context.Context) ([]model.Translation, error) {
	list, err := s.deps.Translations.Refresh(ctx)
	if len(list) > 0 {
		s.mu.Lock()
		s.translations = list
		s.mu.Unlock()
		s.publish(EventTranslations)
	}
	return list, err
}
