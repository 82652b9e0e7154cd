package dataset

type Config struct {
	File      string `envconfig:"KDR_DATASET_FILE"`
	Random    int    `envconfig:"KDR_DATASET_RANDOM" default:"0"`
	RandomMax uint32 `envconfig:"KDR_DATASET_RANDOM_MAX" default:"1000"`
}
