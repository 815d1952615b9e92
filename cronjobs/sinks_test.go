package cronjobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaSinkWriterSettings(t *testing.T) {
	sink := NewKafkaSink([]string{"localhost:9092"}, "healthwatch.notifications")
	defer func() { require.NoError(t, sink.Close()) }()

	assert.Equal(t, "healthwatch.notifications", sink.writer.Topic)
	assert.Equal(t, kafkaBatchTimeout, sink.writer.BatchTimeout)
}
