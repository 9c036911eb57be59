// utils/rekognition.go
package utils

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

var rekClient *rekognition.Client

// must be called once at startup (e.g. in main.go)
func InitRekognition() {
	awsRegion := os.Getenv("AWS_REGION")
	if awsRegion == "" {
		log.Fatal("AWS_REGION not set")
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		log.Fatalf("unable to load AWS config: %v", err)
	}
	rekClient = rekognition.NewFromConfig(cfg)
}

// ModerateImage returns false when Rekognition flags the image with any
// moderation label at or above the confidence floor. User avatars in a
// recovery app must never show drugs, alcohol or explicit content.
func ModerateImage(imageBytes []byte) (bool, error) {
	if rekClient == nil {
		InitRekognition()
	}

	out, err := rekClient.DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &types.Image{Bytes: imageBytes},
		MinConfidence: aws.Float32(70),
	})
	if err != nil {
		return false, err
	}
	return len(out.ModerationLabels) == 0, nil
}
