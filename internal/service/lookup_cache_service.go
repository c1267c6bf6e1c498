package service

import (
	"context"
	"strconv"
	"time"

	"hospital-appointment-scheduling/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Redis keys for the existence-lookup sets
	RedisPatientIDsKey     = "patients:ids"
	RedisPatientPhonesKey  = "patients:phones"
	RedisAppointmentIDsKey = "appointments:ids"

	// Cached sets are re-read from PostgreSQL after expiry
	lookupTTL = 5 * time.Minute

	// Timeout for individual Redis operations
	lookupTimeout = 2 * time.Second
)

// addIfPresentScript appends a member to a lookup set only when the
// set is already populated. Adding to a missing key would leave a
// partial set behind that later membership checks would trust.
var addIfPresentScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 1 then
		redis.call('SADD', KEYS[1], ARGV[1])
		return 1
	end
	return 0
`)

// RecordLookup answers the existence queries the validation engine
// needs: known patient ids, known phone numbers, known appointment ids.
type RecordLookup interface {
	PatientIDExists(ctx context.Context, id uint) (bool, error)
	PhoneRegistered(ctx context.Context, phone string) (bool, error)
	AppointmentIDExists(ctx context.Context, id uint) (bool, error)
	RegisterPatient(ctx context.Context, id uint, phone string)
	RegisterAppointment(ctx context.Context, id uint)
}

// LookupCacheService keeps the full id and phone sets in Redis so the
// hot existence checks don't rescan PostgreSQL on every request. Redis
// is an optimization only: any miss or error falls back to the
// repositories, which remain the source of truth.
type LookupCacheService struct {
	db              *gorm.DB
	log             *logrus.Logger
	redisClient     *redis.Client
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
}

func NewLookupCacheService(
	db *gorm.DB,
	log *logrus.Logger,
	redisClient *redis.Client,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
) *LookupCacheService {
	return &LookupCacheService{
		db:              db,
		log:             log,
		redisClient:     redisClient,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
	}
}

// SyncOnStartup warms all lookup sets from PostgreSQL.
func (s *LookupCacheService) SyncOnStartup(ctx context.Context) error {
	if _, err := s.syncPatientIDs(ctx); err != nil {
		return err
	}
	if _, err := s.syncPatientPhones(ctx); err != nil {
		return err
	}
	if _, err := s.syncAppointmentIDs(ctx); err != nil {
		return err
	}
	s.log.Info("Lookup sets synced to Redis")
	return nil
}

func (s *LookupCacheService) PatientIDExists(ctx context.Context, id uint) (bool, error) {
	member := strconv.FormatUint(uint64(id), 10)
	if found, ok := s.isMember(ctx, RedisPatientIDsKey, member); ok {
		return found, nil
	}

	ids, err := s.syncPatientIDs(ctx)
	if err != nil {
		return false, err
	}
	for _, known := range ids {
		if known == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *LookupCacheService) PhoneRegistered(ctx context.Context, phone string) (bool, error) {
	if found, ok := s.isMember(ctx, RedisPatientPhonesKey, phone); ok {
		return found, nil
	}

	phones, err := s.syncPatientPhones(ctx)
	if err != nil {
		return false, err
	}
	for _, known := range phones {
		if known == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *LookupCacheService) AppointmentIDExists(ctx context.Context, id uint) (bool, error) {
	member := strconv.FormatUint(uint64(id), 10)
	if found, ok := s.isMember(ctx, RedisAppointmentIDsKey, member); ok {
		return found, nil
	}

	ids, err := s.syncAppointmentIDs(ctx)
	if err != nil {
		return false, err
	}
	for _, known := range ids {
		if known == id {
			return true, nil
		}
	}
	return false, nil
}

// RegisterPatient adds a freshly persisted patient to the lookup sets.
// Failures are logged only; the sets re-sync from PostgreSQL on expiry.
func (s *LookupCacheService) RegisterPatient(ctx context.Context, id uint, phone string) {
	s.addMember(ctx, RedisPatientIDsKey, strconv.FormatUint(uint64(id), 10))
	s.addMember(ctx, RedisPatientPhonesKey, phone)
}

// RegisterAppointment adds a freshly persisted appointment id.
func (s *LookupCacheService) RegisterAppointment(ctx context.Context, id uint) {
	s.addMember(ctx, RedisAppointmentIDsKey, strconv.FormatUint(uint64(id), 10))
}

// isMember checks set membership in Redis. The second return value is
// false when the answer is not authoritative (missing key or Redis
// error) and the caller must fall back to PostgreSQL.
func (s *LookupCacheService) isMember(ctx context.Context, key, member string) (bool, bool) {
	opCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	exists, err := s.redisClient.Exists(opCtx, key).Result()
	if err != nil {
		s.log.Warnf("Redis EXISTS failed for %s, falling back to DB: %+v", key, err)
		return false, false
	}
	if exists == 0 {
		return false, false
	}

	found, err := s.redisClient.SIsMember(opCtx, key, member).Result()
	if err != nil {
		s.log.Warnf("Redis SISMEMBER failed for %s, falling back to DB: %+v", key, err)
		return false, false
	}
	return found, true
}

func (s *LookupCacheService) addMember(ctx context.Context, key, member string) {
	opCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	if err := addIfPresentScript.Run(opCtx, s.redisClient, []string{key}, member).Err(); err != nil {
		s.log.Warnf("Failed to add %s to lookup set %s (non-fatal): %+v", member, key, err)
	}
}

func (s *LookupCacheService) syncPatientIDs(ctx context.Context) ([]uint, error) {
	ids, err := s.patientRepo.FindAllIDs(ctx, s.db)
	if err != nil {
		return nil, err
	}
	members := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		members = append(members, strconv.FormatUint(uint64(id), 10))
	}
	s.storeSet(ctx, RedisPatientIDsKey, members)
	return ids, nil
}

func (s *LookupCacheService) syncPatientPhones(ctx context.Context) ([]string, error) {
	phones, err := s.patientRepo.FindAllPhoneNumbers(ctx, s.db)
	if err != nil {
		return nil, err
	}
	members := make([]interface{}, 0, len(phones))
	for _, phone := range phones {
		members = append(members, phone)
	}
	s.storeSet(ctx, RedisPatientPhonesKey, members)
	return phones, nil
}

func (s *LookupCacheService) syncAppointmentIDs(ctx context.Context) ([]uint, error) {
	ids, err := s.appointmentRepo.FindAllIDs(ctx, s.db)
	if err != nil {
		return nil, err
	}
	members := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		members = append(members, strconv.FormatUint(uint64(id), 10))
	}
	s.storeSet(ctx, RedisAppointmentIDsKey, members)
	return ids, nil
}

// storeSet replaces a lookup set atomically via pipeline. Empty tables
// leave no key behind, so lookups keep hitting PostgreSQL until a
// record exists.
func (s *LookupCacheService) storeSet(ctx context.Context, key string, members []interface{}) {
	if len(members) == 0 {
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	pipe := s.redisClient.TxPipeline()
	pipe.Del(opCtx, key)
	pipe.SAdd(opCtx, key, members...)
	pipe.Expire(opCtx, key, lookupTTL)
	if _, err := pipe.Exec(opCtx); err != nil {
		s.log.Warnf("Failed to store lookup set %s (non-fatal): %+v", key, err)
	}
}
