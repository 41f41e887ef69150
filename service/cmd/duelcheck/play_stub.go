//go:build !ocgcore

package main

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/ygobridge/service/internal/config"
)

func runPlay(context.Context, config.Config, *logrus.Logger, []string) error {
	return errors.New("play needs a build with -tags ocgcore")
}
