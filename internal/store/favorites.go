package store

import (
	"go.uber.org/zap"

	"quickbite-client/internal/domain"
)

const favoritesKey = "favorites"

// FavoritesState 纯本地 slice：不走网络，条目是收藏当时的商品快照。
type FavoritesState struct {
	Items []domain.FavoriteEntry
}

func (s *Store) AddToFavorites(p domain.Product) {
	s.mutate("favorites/add", func(st *State) {
		for _, f := range st.Favorites.Items {
			if f.ProduitID == p.ID {
				return // 已收藏，快照不刷新
			}
		}
		st.Favorites.Items = append(st.Favorites.Items, domain.Snapshot(p))
	})
	s.saveFavorites()
}

func (s *Store) RemoveFromFavorites(produitID int64) {
	s.mutate("favorites/remove", func(st *State) {
		kept := st.Favorites.Items[:0]
		for _, f := range st.Favorites.Items {
			if f.ProduitID != produitID {
				kept = append(kept, f)
			}
		}
		st.Favorites.Items = kept
	})
	s.saveFavorites()
}

func (s *Store) ClearFavorites() {
	s.mutate("favorites/clear", func(st *State) { st.Favorites.Items = nil })
	s.saveFavorites()
}

func (s *Store) loadFavorites() {
	if s.local == nil {
		return
	}
	var items []domain.FavoriteEntry
	if err := s.local.GetJSON(favoritesKey, &items); err == nil {
		s.state.Favorites.Items = items
	}
}

func (s *Store) saveFavorites() {
	if s.local == nil {
		return
	}
	s.mu.Lock()
	items := append([]domain.FavoriteEntry(nil), s.state.Favorites.Items...)
	s.mu.Unlock()
	if err := s.local.SetJSON(favoritesKey, items); err != nil {
		s.log.Warn("persist favorites failed", zap.Error(err))
	}
}
