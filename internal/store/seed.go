package store

import (
	"time"

	"softronix/internal/models"
)

const day = 24 * time.Hour

func fptr(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

// seedDevices returns the default device inventory. ClearAll restores exactly
// this set, so keep it deterministic apart from the reference time.
func seedDevices(now time.Time) []models.Device {
	return []models.Device{
		{
			ID:              "1",
			Name:            "Smart Thermostat - Office",
			Type:            models.DeviceThermostat,
			Status:          models.StatusOnline,
			IsActive:        true,
			Temperature:     fptr(22.5),
			Humidity:        fptr(45),
			Uptime:          98.5,
			Location:        "Office Building A",
			LastMaintenance: tptr(now.Add(-30 * day)),
			NextMaintenance: tptr(now.Add(60 * day)),
			FirmwareVersion: "v2.1.3",
			BatteryLevel:    fptr(85),
		},
		{
			ID:              "2",
			Name:            "Security Camera - Entrance",
			Type:            models.DeviceCamera,
			Status:          models.StatusOnline,
			IsActive:        true,
			Uptime:          99.2,
			Location:        "Main Entrance",
			LastMaintenance: tptr(now.Add(-15 * day)),
			NextMaintenance: tptr(now.Add(45 * day)),
			FirmwareVersion: "v1.8.2",
		},
		{
			ID:              "3",
			Name:            "Smart Lock - Conference Room",
			Type:            models.DeviceLock,
			Status:          models.StatusOffline,
			IsActive:        false,
			Uptime:          87.3,
			Location:        "Conference Room 1",
			LastMaintenance: tptr(now.Add(-45 * day)),
			NextMaintenance: tptr(now.Add(15 * day)),
			FirmwareVersion: "v3.0.1",
			BatteryLevel:    fptr(23),
		},
		{
			ID:              "4",
			Name:            "Environmental Sensor - Lab",
			Type:            models.DeviceSensor,
			Status:          models.StatusMaintenance,
			IsActive:        true,
			Temperature:     fptr(24.1),
			Humidity:        fptr(52),
			Uptime:          95.8,
			Location:        "Research Lab",
			LastMaintenance: tptr(now.Add(-7 * day)),
			NextMaintenance: tptr(now.Add(83 * day)),
			FirmwareVersion: "v1.5.4",
			BatteryLevel:    fptr(67),
		},
		{
			ID:              "5",
			Name:            "Smart Lighting - Warehouse",
			Type:            models.DeviceLighting,
			Status:          models.StatusOnline,
			IsActive:        true,
			Uptime:          96.7,
			Location:        "Warehouse Floor 1",
			LastMaintenance: tptr(now.Add(-20 * day)),
			NextMaintenance: tptr(now.Add(70 * day)),
			FirmwareVersion: "v2.3.1",
		},
	}
}

func seedAlerts(now time.Time) []models.Alert {
	return []models.Alert{
		{
			ID:         "1",
			DeviceID:   "4",
			DeviceName: "Environmental Sensor - Lab",
			Type:       models.AlertWarning,
			Message:    "Temperature threshold exceeded (24.1°C)",
			Timestamp:  now.Add(-15 * time.Minute),
			Severity:   models.SeverityMedium,
		},
		{
			ID:         "2",
			DeviceID:   "3",
			DeviceName: "Smart Lock - Conference Room",
			Type:       models.AlertError,
			Message:    "Device offline for 2 hours",
			Timestamp:  now.Add(-2 * time.Hour),
			Severity:   models.SeverityHigh,
		},
		{
			ID:           "3",
			DeviceID:     "1",
			DeviceName:   "Smart Thermostat - Office",
			Type:         models.AlertInfo,
			Message:      "Scheduled maintenance completed",
			Timestamp:    now.Add(-time.Hour),
			Severity:     models.SeverityLow,
			Acknowledged: true,
		},
		{
			ID:         "4",
			DeviceID:   "3",
			DeviceName: "Smart Lock - Conference Room",
			Type:       models.AlertWarning,
			Message:    "Battery level low (23%)",
			Timestamp:  now.Add(-30 * time.Hour),
			Severity:   models.SeverityMedium,
		},
	}
}

func seedAutomationRules(now time.Time) []models.AutomationRule {
	return []models.AutomationRule{
		{
			ID:            "1",
			Name:          "Temperature Alert",
			Condition:     "Temperature > 25°C",
			Action:        "Send notification & adjust HVAC",
			IsActive:      true,
			LastTriggered: tptr(now.Add(-2 * time.Hour)),
			TriggerCount:  15,
		},
		{
			ID:            "2",
			Name:          "Security Protocol",
			Condition:     "Motion detected after hours",
			Action:        "Lock all doors & alert security",
			IsActive:      true,
			LastTriggered: tptr(now.Add(-24 * time.Hour)),
			TriggerCount:  3,
		},
		{
			ID:            "3",
			Name:          "Energy Optimization",
			Condition:     "No motion for 30 minutes",
			Action:        "Dim lights to 20%",
			IsActive:      false,
			LastTriggered: tptr(now.Add(-6 * time.Hour)),
			TriggerCount:  42,
		},
	}
}

func seedIntegrations(now time.Time) []models.Integration {
	return []models.Integration{
		{
			ID:               "1",
			Name:             "AWS IoT Core",
			Type:             models.IntegrationCloud,
			Status:           models.IntegrationConnected,
			LastSync:         now.Add(-5 * time.Minute),
			ConnectionString: "iot.us-east-1.amazonaws.com",
			APIKey:           "AKIA***************",
			Metrics:          &models.IntegrationMetrics{MessagesPerHour: 1240, ErrorRate: 0.2},
			Health:           &models.IntegrationHealth{Score: 98, LastCheck: now.Add(-5 * time.Minute)},
		},
		{
			ID:               "2",
			Name:             "Zigbee Network",
			Type:             models.IntegrationProtocol,
			Status:           models.IntegrationConnected,
			LastSync:         now.Add(-2 * time.Minute),
			ConnectionString: "zigbee://192.168.1.100:8080",
			Health:           &models.IntegrationHealth{Score: 94, LastCheck: now.Add(-2 * time.Minute)},
		},
		{
			ID:               "3",
			Name:             "MQTT Broker",
			Type:             models.IntegrationMessaging,
			Status:           models.IntegrationConnected,
			LastSync:         now.Add(-time.Minute),
			ConnectionString: "mqtt://broker.softronixtech.com:1883",
			Metrics:          &models.IntegrationMetrics{MessagesPerHour: 5630, ErrorRate: 0.05},
		},
		{
			ID:               "4",
			Name:             "LoRaWAN Gateway",
			Type:             models.IntegrationProtocol,
			Status:           models.IntegrationError,
			LastSync:         now.Add(-30 * time.Minute),
			ConnectionString: "lorawan://gateway.local:1700",
		},
	}
}

func seedMaintenanceTasks(now time.Time) []models.MaintenanceTask {
	return []models.MaintenanceTask{
		{
			ID:                "1",
			DeviceID:          "1",
			DeviceName:        "Smart Thermostat - Office",
			Type:              "Filter Replacement",
			ScheduledDate:     now.Add(3 * day),
			Priority:          models.SeverityHigh,
			Status:            models.TaskPending,
			AssignedTo:        "John Smith",
			EstimatedDuration: 30,
		},
		{
			ID:                "2",
			DeviceID:          "2",
			DeviceName:        "Security Camera - Entrance",
			Type:              "Lens Cleaning",
			ScheduledDate:     now.Add(7 * day),
			Priority:          models.SeverityMedium,
			Status:            models.TaskPending,
			AssignedTo:        "Sarah Johnson",
			EstimatedDuration: 15,
		},
		{
			ID:                "3",
			DeviceID:          "4",
			DeviceName:        "Environmental Sensor - Lab",
			Type:              "Calibration",
			ScheduledDate:     now.Add(14 * day),
			Priority:          models.SeverityLow,
			Status:            models.TaskInProgress,
			AssignedTo:        "Mike Davis",
			EstimatedDuration: 45,
		},
	}
}
