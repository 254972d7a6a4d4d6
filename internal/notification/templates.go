package notification

// The HTML bodies mirror the studio's existing notification layout: a
// gradient header, a detail card per section, and a department footer.

const reservationSubmittedTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center; }
.content { background: #f9f9f9; padding: 20px; border: 1px solid #ddd; border-radius: 0 0 8px 8px; }
.section { background: white; padding: 15px; margin-bottom: 15px; border-radius: 5px; border-left: 4px solid #667eea; }
.section h3 { margin-top: 0; color: #667eea; }
.info-row { padding: 8px 0; border-bottom: 1px solid #eee; }
.info-label { font-weight: bold; width: 180px; color: #555; display: inline-block; }
.footer { text-align: center; margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd; color: #666; font-size: 12px; }
</style>
</head>
<body>
<div class="header">
<h2>🎬 New Studio Reservation Request</h2>
<p>Media &amp; Creative Industries Department</p>
</div>
<div class="content">
<div class="section">
<h3>👤 Student Information</h3>
<div class="info-row"><span class="info-label">Full Name:</span><span>{{orNA .StudentName}}</span></div>
<div class="info-row"><span class="info-label">Student ID:</span><span>{{orNA .StudentID}}</span></div>
<div class="info-row"><span class="info-label">Email:</span><span>{{orNA .Email}}</span></div>
<div class="info-row"><span class="info-label">Phone:</span><span>{{orNA .Phone}}</span></div>
<div class="info-row"><span class="info-label">College:</span><span>{{orNA .College}}</span></div>
<div class="info-row"><span class="info-label">Department:</span><span>{{orNA .Department}}</span></div>
</div>
<div class="section">
<h3>📅 Reservation Details</h3>
<div class="info-row"><span class="info-label">Date:</span><span>{{orNA .Date}}</span></div>
<div class="info-row"><span class="info-label">Time:</span><span>{{orNA .FromTime}} - {{orNA .ToTime}}</span></div>
<div class="info-row"><span class="info-label">Duration:</span><span>{{orNA .Duration}}</span></div>
<div class="info-row"><span class="info-label">Studio Type:</span><span>{{orNA .StudioType}}</span></div>
<div class="info-row"><span class="info-label">Supervisor:</span><span>{{orNA .Supervisor}}</span></div>
</div>
<div class="section">
<h3>📋 Project Information</h3>
<div class="info-row"><span class="info-label">Project Title:</span><span>{{orNA .ProjectTitle}}</span></div>
<div class="info-row"><span class="info-label">Description:</span><span>{{orNA .ProjectDescription}}</span></div>
<div class="info-row"><span class="info-label">Equipment Needed:</span><span>{{orNA .EquipmentNeeded}}</span></div>
</div>
<div class="footer">
<p>This is an automated notification from the Media Studio Booking System</p>
<p>Received on {{.ReceivedAt}}</p>
</div>
</div>
</body>
</html>`

const borrowSubmittedTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center; }
.content { background: #f9f9f9; padding: 20px; border: 1px solid #ddd; border-radius: 0 0 8px 8px; }
.section { background: white; padding: 15px; margin-bottom: 15px; border-radius: 5px; border-left: 4px solid #667eea; }
.section h3 { margin-top: 0; color: #667eea; }
.info-row { padding: 8px 0; border-bottom: 1px solid #eee; }
.info-label { font-weight: bold; width: 180px; color: #555; display: inline-block; }
.tools-section { background: white; padding: 15px; margin-bottom: 15px; border-radius: 5px; border-left: 4px solid #ff9800; }
.footer { text-align: center; margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd; color: #666; font-size: 12px; }
</style>
</head>
<body>
<div class="header">
<h2>🛠️ New Equipment Borrow Request</h2>
<p>Media &amp; Creative Industries Department</p>
</div>
<div class="content">
<div class="section">
<h3>👤 Student Information</h3>
<div class="info-row"><span class="info-label">Full Name:</span><span>{{orNA .StudentName}}</span></div>
<div class="info-row"><span class="info-label">Student ID:</span><span>{{orNA .StudentID}}</span></div>
<div class="info-row"><span class="info-label">Email:</span><span>{{orNA .Email}}</span></div>
<div class="info-row"><span class="info-label">Phone:</span><span>{{orNA .Phone}}</span></div>
<div class="info-row"><span class="info-label">College:</span><span>{{orNA .College}}</span></div>
<div class="info-row"><span class="info-label">Department:</span><span>{{orNA .Department}}</span></div>
</div>
<div class="section">
<h3>📅 Borrow Details</h3>
<div class="info-row"><span class="info-label">Borrow Date:</span><span>{{orNA .BorrowDate}}</span></div>
<div class="info-row"><span class="info-label">Return Date:</span><span>{{orNA .ReturnDate}}</span></div>
<div class="info-row"><span class="info-label">Equipment Type:</span><span>{{orNA .EquipmentType}}</span></div>
<div class="info-row"><span class="info-label">Supervisor:</span><span>{{orNA .Supervisor}}</span></div>
<div class="info-row"><span class="info-label">Purpose:</span><span>{{orNA .Purpose}}</span></div>
</div>
<div class="tools-section">
<h3>🛠️ Requested Equipment</h3>
<p>{{orNA .EquipmentName}}</p>
</div>
<div class="footer">
<p>This is an automated notification from the Media Studio Booking System</p>
<p>Received on {{.ReceivedAt}}</p>
</div>
</div>
</body>
</html>`

const reservationReminderTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: linear-gradient(135deg, #c62828 0%, #d32f2f 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
.content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
.reminder-badge { display: inline-block; padding: 15px 25px; background: #ff9800; color: white; border-radius: 25px; font-weight: bold; margin: 20px 0; font-size: 18px; }
.details-box { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #ff9800; }
.detail-row { padding: 10px 0; border-bottom: 1px solid #eee; }
.detail-label { font-weight: bold; color: #555; display: inline-block; width: 150px; }
.important-note { background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; border-radius: 5px; }
.footer { text-align: center; padding: 20px; color: #777; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
<div class="header">
<h1 style="margin: 0; font-size: 28px;">⏰ Studio Reservation Reminder</h1>
<p style="margin: 10px 0 0 0; font-size: 14px;">UAEU Media Studio</p>
</div>
<div class="content">
<p style="font-size: 18px; color: #2c3e50;">Dear {{orNA .StudentName}},</p>
<div style="text-align: center;"><span class="reminder-badge">🔔 REMINDER</span></div>
<p style="font-size: 16px; color: #2c3e50;">This is a friendly reminder about your upcoming studio reservation.</p>
<div class="details-box">
<h3 style="color: #c62828; margin-top: 0;">📋 Reservation Details</h3>
<div class="detail-row"><span class="detail-label">📅 Date:</span><span style="font-weight: bold;">{{orNA .Date}}</span></div>
<div class="detail-row"><span class="detail-label">🕐 Time:</span><span style="font-weight: bold; color: #d32f2f;">{{orNA .FromTime}} - {{orNA .ToTime}}</span></div>
<div class="detail-row"><span class="detail-label">🎬 Studio:</span><span>{{orNA .StudioType}}</span></div>
<div class="detail-row" style="border-bottom: none;"><span class="detail-label">📁 Project:</span><span>{{orNA .ProjectTitle}}</span></div>
</div>
<div class="important-note">
<h4 style="margin-top: 0; color: #856404;">⚠️ Important Reminders:</h4>
<ul style="margin: 10px 0; padding-left: 20px; color: #856404;">
<li>Please arrive <strong>on time</strong></li>
<li>Bring your <strong>student ID</strong></li>
<li>Ensure all equipment is <strong>returned in good condition</strong></li>
<li>If you need to cancel, please contact us <strong>as soon as possible</strong></li>
</ul>
</div>
<p style="font-size: 14px; color: #555; margin-top: 20px;">If you have any questions or need to make changes, please contact the Media Studio team immediately.</p>
<p style="font-size: 14px; color: #555; margin-top: 20px;">We look forward to seeing you!</p>
</div>
<div class="footer">
<p><strong>UAE University</strong></p>
<p>Media &amp; Creative Industries Department</p>
<p>© 2025 M&amp;CI Department</p>
</div>
</div>
</body>
</html>`

const borrowReminderTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: linear-gradient(135deg, #c62828 0%, #d32f2f 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
.content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
.reminder-badge { display: inline-block; padding: 15px 25px; background: #ff9800; color: white; border-radius: 25px; font-weight: bold; margin: 20px 0; font-size: 18px; }
.details-box { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #ff9800; }
.detail-row { padding: 10px 0; border-bottom: 1px solid #eee; }
.detail-label { font-weight: bold; color: #555; display: inline-block; width: 150px; }
.urgent-note { background: #ffebee; border-left: 4px solid #f44336; padding: 15px; margin: 20px 0; border-radius: 5px; }
.footer { text-align: center; padding: 20px; color: #777; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
<div class="header">
<h1 style="margin: 0; font-size: 28px;">⏰ Equipment Return Reminder</h1>
<p style="margin: 10px 0 0 0; font-size: 14px;">UAEU Media Studio</p>
</div>
<div class="content">
<p style="font-size: 18px; color: #2c3e50;">Dear {{orNA .StudentName}},</p>
<div style="text-align: center;"><span class="reminder-badge">🔔 RETURN REMINDER</span></div>
<p style="font-size: 16px; color: #2c3e50;">This is a friendly reminder that your borrowed equipment is due for return soon.</p>
<div class="details-box">
<h3 style="color: #c62828; margin-top: 0;">📋 Borrow Details</h3>
<div class="detail-row"><span class="detail-label">📅 Borrow Date:</span><span>{{orNA .BorrowDate}}</span></div>
<div class="detail-row"><span class="detail-label">📅 Return Date:</span><span style="font-weight: bold; color: #f44336; font-size: 18px;">{{orNA .ReturnDate}}</span></div>
<div class="detail-row" style="border-bottom: none;"><span class="detail-label">🛠️ Equipment:</span><span>{{.EquipmentShort}}</span></div>
</div>
<div class="urgent-note">
<h4 style="margin-top: 0; color: #c62828;">⚠️ Important:</h4>
<ul style="margin: 10px 0; padding-left: 20px; color: #c62828;">
<li><strong>Return all equipment by {{orNA .ReturnDate}}</strong></li>
<li>Check that all items are in <strong>good condition</strong></li>
<li>Return to the Media Studio during working hours</li>
<li><strong>Late returns may affect future borrowing privileges</strong></li>
</ul>
</div>
<p style="font-size: 14px; color: #555; margin-top: 20px;">If you need an extension or have any issues, please contact the Media Studio team immediately.</p>
<p style="font-size: 14px; color: #555; margin-top: 20px;">Thank you for taking care of our equipment!</p>
</div>
<div class="footer">
<p><strong>UAE University</strong></p>
<p>Media &amp; Creative Industries Department</p>
<p>© 2025 M&amp;CI Department</p>
</div>
</div>
</body>
</html>`

// statusTemplate serves both decision notices. IsReservation switches the
// details card between reservation and borrow fields.
const statusTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: linear-gradient(135deg, #c62828 0%, #d32f2f 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
.content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
.status-badge { display: inline-block; padding: 10px 20px; background: {{.BadgeColor}}; color: white; border-radius: 20px; font-weight: bold; margin: 20px 0; }
.details-box { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid {{.BadgeColor}}; }
.detail-row { padding: 10px 0; border-bottom: 1px solid #eee; }
.detail-label { font-weight: bold; color: #555; display: inline-block; width: 150px; }
.footer { text-align: center; padding: 20px; color: #777; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
<div class="header">
{{if .IsReservation}}<h1 style="margin: 0; font-size: 28px;">📅 Reservation Status Update</h1>{{else}}<h1 style="margin: 0; font-size: 28px;">🛠️ Borrow Request Status Update</h1>{{end}}
<p style="margin: 10px 0 0 0; font-size: 14px;">UAEU Media Studio</p>
</div>
<div class="content">
<p style="font-size: 18px; color: #2c3e50;">Dear {{orNA .StudentName}},</p>
<div style="text-align: center;"><span class="status-badge">{{.Badge}}</span></div>
<p style="font-size: 16px; color: #2c3e50;">{{.Headline}}</p>
<div class="details-box">
{{if .IsReservation}}
<h3 style="color: #c62828; margin-top: 0;">📋 Reservation Details</h3>
<div class="detail-row"><span class="detail-label">📅 Date:</span><span>{{orNA .Date}}</span></div>
<div class="detail-row"><span class="detail-label">🕐 Time:</span><span>{{orNA .FromTime}} - {{orNA .ToTime}}</span></div>
<div class="detail-row" style="border-bottom: none;"><span class="detail-label">📁 Project:</span><span>{{orNA .ProjectTitle}}</span></div>
{{else}}
<h3 style="color: #c62828; margin-top: 0;">📋 Borrow Details</h3>
<div class="detail-row"><span class="detail-label">📅 Borrow Date:</span><span>{{orNA .BorrowDate}}</span></div>
<div class="detail-row"><span class="detail-label">📅 Return Date:</span><span>{{orNA .ReturnDate}}</span></div>
<div class="detail-row" style="border-bottom: none;"><span class="detail-label">🛠️ Equipment:</span><span>{{.EquipmentShort}}</span></div>
{{end}}
</div>
<p style="font-size: 14px; color: #555; margin-top: 20px;">If you have any questions, please contact the Media Studio team.</p>
</div>
<div class="footer">
<p><strong>UAE University</strong></p>
<p>Media &amp; Creative Industries Department</p>
<p>© 2025 M&amp;CI Department</p>
</div>
</div>
</body>
</html>`
