// Package preferencesvc xử lý các preference key-value của người vận hành.
package preferencesvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "panier_commerce/internal/api/base/service"
	preferencedto "panier_commerce/internal/api/preference/dto"
	preferencemodels "panier_commerce/internal/api/preference/models"
	"panier_commerce/internal/common"
	"panier_commerce/internal/global"
)

// PreferenceService đọc/ghi preference trong MongoDB (1 document per key)
type PreferenceService struct {
	prefSvc *basesvc.BaseServiceMongoImpl[preferencemodels.Preference]
}

// NewPreferenceService tạo instance mới của PreferenceService
func NewPreferenceService() (*PreferenceService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Preferences)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %v", global.MongoDB_ColNames.Preferences, common.ErrNotFound)
	}
	return &PreferenceService{
		prefSvc: basesvc.NewBaseServiceMongo[preferencemodels.Preference](collection),
	}, nil
}

// GetFilters đọc bộ filter đã lưu; chưa có thì trả về mặc định (không phải lỗi)
func (s *PreferenceService) GetFilters(ctx context.Context) (preferencemodels.FilterPreference, error) {
	pref, err := s.prefSvc.FindOne(ctx, bson.M{"key": preferencemodels.PrefKeyFilters})
	if err != nil {
		if err == common.ErrNotFound {
			return preferencemodels.DefaultFilters(), nil
		}
		return preferencemodels.FilterPreference{}, err
	}
	if pref.Filters == nil {
		return preferencemodels.DefaultFilters(), nil
	}
	return *pref.Filters, nil
}

// PutFilters lưu bộ filter đang active
func (s *PreferenceService) PutFilters(ctx context.Context, input *preferencedto.FilterPreferenceInput) error {
	filters := preferencemodels.FilterPreference{
		Status: input.Status,
		Search: input.Search,
		Sort:   input.Sort,
	}
	pref := preferencemodels.Preference{
		Key:       preferencemodels.PrefKeyFilters,
		Filters:   &filters,
		UpdatedAt: time.Now(),
	}
	_, err := s.prefSvc.Upsert(ctx, bson.M{"key": preferencemodels.PrefKeyFilters}, pref)
	return err
}

// GetTheme đọc theme token đã lưu; chưa có trả về chuỗi rỗng
func (s *PreferenceService) GetTheme(ctx context.Context) (string, error) {
	pref, err := s.prefSvc.FindOne(ctx, bson.M{"key": preferencemodels.PrefKeyTheme})
	if err != nil {
		if err == common.ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return pref.Theme, nil
}

// PutTheme lưu theme token
func (s *PreferenceService) PutTheme(ctx context.Context, input *preferencedto.ThemePreferenceInput) error {
	pref := preferencemodels.Preference{
		Key:       preferencemodels.PrefKeyTheme,
		Theme:     input.Theme,
		UpdatedAt: time.Now(),
	}
	_, err := s.prefSvc.Upsert(ctx, bson.M{"key": preferencemodels.PrefKeyTheme}, pref)
	return err
}
