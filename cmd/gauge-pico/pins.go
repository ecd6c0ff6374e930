//go:build rp2040 || rp2350

package main

import "machine"

const (
	// GC9A01 round panel on SPI0
	PIN_TFT_SCK  = machine.GP18
	PIN_TFT_MOSI = machine.GP19
	PIN_TFT_MISO = machine.GP16 // unused by the panel, claimed by SPI0
	PIN_TFT_CS   = machine.GP17
	PIN_TFT_DC   = machine.GP20
	PIN_TFT_RST  = machine.GP21
	PIN_TFT_BL   = machine.GP22

	SPI_FREQUENCY = 40 * machine.MHz

	// Optional BME280 on I2C0 (board "pico-bme280")
	PIN_I2C_SDA   = machine.GP4
	PIN_I2C_SCL   = machine.GP5
	I2C_FREQUENCY = 400 * machine.KHz

	// Log output on UART1
	PIN_LOG_TX     = machine.GP8
	PIN_LOG_RX     = machine.GP9
	UART_BAUD_RATE = 115200
)
