package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// ClinicCache is a best-effort read-through cache over patients and
// per-patient consultation lists. Every failure is treated as a miss and
// logged at debug level; callers never see cache errors.
//
// Keys: patient:<id> and consultations:<patientID>:<limit>.
type ClinicCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewClinicCache(client *redis.Client, logger zerolog.Logger) *ClinicCache {
	return &ClinicCache{client: client, logger: logger}
}

func (c *ClinicCache) GetPatient(ctx context.Context, id int64) (*domain.Patient, bool) {
	payload, err := c.client.Get(ctx, patientKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug().Err(err).Int64("patient_id", id).Msg("patient cache read failed")
		}
		return nil, false
	}

	var p domain.Patient
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (c *ClinicCache) SetPatient(ctx context.Context, p *domain.Patient) {
	payload, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, patientKey(p.ID), payload, cacheTTL).Err(); err != nil {
		c.logger.Debug().Err(err).Int64("patient_id", p.ID).Msg("patient cache write failed")
	}
}

func (c *ClinicCache) GetConsultations(ctx context.Context, patientID int64, limit int) ([]*domain.Consultation, bool) {
	payload, err := c.client.Get(ctx, consultationsKey(patientID, limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug().Err(err).Int64("patient_id", patientID).Msg("consultation cache read failed")
		}
		return nil, false
	}

	var list []*domain.Consultation
	if err := json.Unmarshal(payload, &list); err != nil {
		return nil, false
	}
	return list, true
}

func (c *ClinicCache) SetConsultations(ctx context.Context, patientID int64, limit int, list []*domain.Consultation) {
	payload, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, consultationsKey(patientID, limit), payload, cacheTTL).Err(); err != nil {
		c.logger.Debug().Err(err).Int64("patient_id", patientID).Msg("consultation cache write failed")
	}
}

// InvalidatePatient removes the patient entry and any cached consultation
// list for it after a write.
func (c *ClinicCache) InvalidatePatient(ctx context.Context, patientID int64) {
	keys := []string{patientKey(patientID)}

	iter := c.client.Scan(ctx, 0, fmt.Sprintf("consultations:%d:*", patientID), 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Debug().Err(err).Int64("patient_id", patientID).Msg("cache invalidation scan failed")
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug().Err(err).Int64("patient_id", patientID).Msg("cache invalidation failed")
	}
}

func patientKey(id int64) string {
	return fmt.Sprintf("patient:%d", id)
}

func consultationsKey(patientID int64, limit int) string {
	return fmt.Sprintf("consultations:%d:%d", patientID, limit)
}
