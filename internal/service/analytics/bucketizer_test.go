package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC)

func day(offset int, hour int) time.Time {
	d := testNow.AddDate(0, 0, offset)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

func TestBucketize_Scenario(t *testing.T) {
	timestamps := []time.Time{
		day(0, 1), day(0, 9), day(0, 14),
		day(-2, 0), day(-2, 23),
	}

	buckets, err := Bucketize(testNow, 7, timestamps)
	require.NoError(t, err)

	want := map[string]int64{"2025-03-12": 3, "2025-03-11": 0, "2025-03-10": 2}
	require.Len(t, buckets, 7)
	assert.Equal(t, "2025-03-06", buckets[0].Date)
	assert.Equal(t, "2025-03-12", buckets[6].Date)
	for _, b := range buckets {
		assert.Equal(t, want[b.Date], b.Count, "bucket %s", b.Date)
	}
}

func TestBucketize_EmptyInput(t *testing.T) {
	buckets, err := Bucketize(testNow, 7, nil)
	require.NoError(t, err)

	require.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.Zero(t, b.Count)
	}
}

func TestBucketize_CompletenessAndOrder(t *testing.T) {
	for _, n := range []int{1, 2, 7, 31, 90} {
		buckets, err := Bucketize(testNow, n, nil)
		require.NoError(t, err)
		require.Len(t, buckets, n)

		assert.Equal(t, "2025-03-12", buckets[n-1].Date)
		for i := 1; i < n; i++ {
			prev, err := time.Parse("2006-01-02", buckets[i-1].Date)
			require.NoError(t, err)
			cur, err := time.Parse("2006-01-02", buckets[i].Date)
			require.NoError(t, err)
			assert.Equal(t, 24*time.Hour, cur.Sub(prev), "gap between %s and %s", buckets[i-1].Date, buckets[i].Date)
		}
	}
}

func TestBucketize_DropsOutOfWindow(t *testing.T) {
	timestamps := []time.Time{
		day(-7, 12),
		day(1, 0),
		day(-6, 0),
		day(0, 23),
	}

	buckets, err := Bucketize(testNow, 7, timestamps)
	require.NoError(t, err)

	var sum int64
	for _, b := range buckets {
		sum += b.Count
	}
	assert.Equal(t, int64(2), sum)
	assert.Equal(t, int64(1), buckets[0].Count)
	assert.Equal(t, int64(1), buckets[6].Count)
}

func TestBucketize_CountConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	windowStart := day(-6, 0)

	var timestamps []time.Time
	for i := 0; i < 500; i++ {
		timestamps = append(timestamps, windowStart.Add(time.Duration(rng.Int63n(int64(7*24*time.Hour)))))
	}

	buckets, err := Bucketize(testNow, 7, timestamps)
	require.NoError(t, err)

	var sum int64
	for _, b := range buckets {
		sum += b.Count
	}
	assert.Equal(t, int64(len(timestamps)), sum)
}

func TestBucketize_UsesUTCCalendarDay(t *testing.T) {
	kigali := time.FixedZone("CAT", 2*60*60)
	// 01:00 in Kigali on the 12th is still the 11th in UTC.
	ts := time.Date(2025, 3, 12, 1, 0, 0, 0, kigali)

	buckets, err := Bucketize(testNow, 7, []time.Time{ts})
	require.NoError(t, err)

	assert.Equal(t, int64(1), buckets[5].Count)
	assert.Equal(t, "2025-03-11", buckets[5].Date)
}

func TestBucketize_Idempotent(t *testing.T) {
	timestamps := []time.Time{day(0, 1), day(-3, 5), day(-3, 6)}

	first, err := Bucketize(testNow, 7, timestamps)
	require.NoError(t, err)
	second, err := Bucketize(testNow, 7, timestamps)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBucketize_InvalidWindow(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Bucketize(testNow, n, nil)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	}
}
