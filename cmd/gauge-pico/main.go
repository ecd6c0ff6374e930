//go:build rp2040 || rp2350

// Command gauge-pico is the round-display gauge firmware for RP2040/RP2350
// boards with a GC9A01 240x240 panel.
package main

import (
	"context"
	"machine"
	"time"

	"github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/bme280"
	"tinygo.org/x/drivers/gc9a01"

	"gaugecode-go/services/config"
	"gaugecode-go/services/gauge"
	"gaugecode-go/x/logx"
)

// board selects the compiled-in configuration; override with
// -ldflags "-X main.board=pico-bme280".
var board = "pico"

func main() {
	// Allow the USB/UART bridge to enumerate before we print.
	time.Sleep(2 * time.Second)

	uart := uartx.UART1
	if err := uart.Configure(uartx.UARTConfig{
		BaudRate: UART_BAUD_RATE,
		TX:       PIN_LOG_TX,
		RX:       PIN_LOG_RX,
	}); err != nil {
		println("uart configure error")
		halt()
	}

	cfg, ok := config.ForBoard(board)
	if !ok {
		println("unknown board", board)
		halt()
	}
	log := logx.New(uart, cfg.Log.Debug)

	log.Info("Multi-Sensor Display Starting...")
	log.Info("Pin Configuration:")
	log.Info("CS: %d, DC: %d, RST: %d, BL: %d", PIN_TFT_CS, PIN_TFT_DC, PIN_TFT_RST, PIN_TFT_BL)
	log.Info("MOSI: %d, SCLK: %d, MISO: %d", PIN_TFT_MOSI, PIN_TFT_SCK, PIN_TFT_MISO)

	log.Info("Initializing display...")
	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		Frequency: SPI_FREQUENCY,
		SCK:       PIN_TFT_SCK,
		SDO:       PIN_TFT_MOSI,
		SDI:       PIN_TFT_MISO,
	}); err != nil {
		log.Error("spi configure: %v", err)
		halt()
	}
	tft := gc9a01.New(spi, PIN_TFT_RST, PIN_TFT_DC, PIN_TFT_CS, PIN_TFT_BL)
	tft.Configure(gc9a01.Config{
		Width:       cfg.Display.Width,
		Height:      cfg.Display.Height,
		Orientation: gc9a01.Orientation(cfg.Display.Orientation),
	})
	log.Info("Display initialized successfully!")

	if rnd, err := machine.GetRNG(); err == nil {
		cfg.Source.Seed = uint64(rnd)
	}

	opts := gauge.Options{
		Surface: gauge.NewDisplaySurface(&tft),
		Log:     log,
	}
	if cfg.Source.Kind == config.SourceBME280 {
		i2c := machine.I2C0
		if err := i2c.Configure(machine.I2CConfig{
			SDA:       PIN_I2C_SDA,
			SCL:       PIN_I2C_SCL,
			Frequency: I2C_FREQUENCY,
		}); err != nil {
			log.Error("i2c configure: %v", err)
			halt()
		}
		sensor := bme280.New(i2c)
		sensor.Configure()
		if !sensor.Connected() {
			log.Warn("BME280 not detected; readings will fail until it answers")
		}
		opts.Source = gauge.NewBME280Source(&sensor)
	}

	svc, err := gauge.New(cfg, opts)
	if err != nil {
		log.Error("gauge: %v", err)
		halt()
	}

	// Runs forever; there is no stop signal on the device.
	_ = svc.Run(context.Background())
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
